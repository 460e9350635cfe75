package ai

type ModelPreset struct {
	DisplayName string
	Provider    Provider
	ModelName   string
}

// ModelPresets lists the selectable models; the first entry per provider is its default.
var ModelPresets = []ModelPreset{
	{DisplayName: "Claude 3.5 Sonnet", Provider: Anthropic, ModelName: "claude-3-5-sonnet-20240620"},
	{DisplayName: "Claude 3 Opus", Provider: Anthropic, ModelName: "claude-3-opus-20240229"},
	{DisplayName: "Claude 3 Haiku", Provider: Anthropic, ModelName: "claude-3-haiku-20240307"},
	{DisplayName: "Gemini 1.5 Flash", Provider: Gemini, ModelName: "gemini-1.5-flash"},
	{DisplayName: "Gemini 1.5 Pro", Provider: Gemini, ModelName: "gemini-1.5-pro"},
	{DisplayName: "GPT-4 Turbo (1106 preview)", Provider: OpenAI, ModelName: "gpt-4-1106-preview"},
	{DisplayName: "GPT-4o", Provider: OpenAI, ModelName: "gpt-4o"},
	{DisplayName: "GPT-4o mini", Provider: OpenAI, ModelName: "gpt-4o-mini"},
	{DisplayName: "Llama 3 70B (8k)", Provider: Groq, ModelName: "llama3-70b-8192"},
	{DisplayName: "Llama 3 8B (8k)", Provider: Groq, ModelName: "llama3-8b-8192"},
	{DisplayName: "Mixtral 8x7B (32k)", Provider: Groq, ModelName: "mixtral-8x7b-32768"},
}

func Models(p Provider) []ModelPreset {
	var out []ModelPreset
	for _, m := range ModelPresets {
		if m.Provider == p {
			out = append(out, m)
		}
	}
	return out
}

func DefaultModel(p Provider) string {
	models := Models(p)
	if len(models) == 0 {
		return ""
	}
	return models[0].ModelName
}

func IsKnownModel(p Provider, name string) bool {
	for _, m := range Models(p) {
		if m.ModelName == name {
			return true
		}
	}
	return false
}

// ModelProvider reports which provider offers a preset model.
func ModelProvider(name string) (Provider, bool) {
	for _, m := range ModelPresets {
		if m.ModelName == name {
			return m.Provider, true
		}
	}
	return 0, false
}
