package llm

const personaPrompt = "You are an economic consulting assistant. Explain in clear, simple English."

// temperature stays low so answers track the supplied figures.
const temperature = 0.33

func systemPrompt(marketContext string) string {
	if marketContext == "" {
		return personaPrompt
	}
	return personaPrompt + "\n\n" + marketContext
}
