package generation

import (
	"github.com/openai/openai-go/v3"
)

// NewParams builds the single-shot request for prompt: the fixed system
// prompt followed by one user message. Earlier turns are never sent.
func NewParams(model string, temperature float64, prompt string) openai.ChatCompletionNewParams {
	var params openai.ChatCompletionNewParams

	params.Model = model
	params.Temperature = openai.Float(temperature)
	params.Messages = []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(SystemPrompt),
		openai.UserMessage(prompt),
	}

	return params
}
