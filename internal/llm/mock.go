package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Responses    []string
	Err          error
	Prompts      []string
	Temperatures []float64
}

func (m *MockClient) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	m.Temperatures = append(m.Temperatures, temperature)
	if m.Err != nil {
		return "", m.Err
	}
	idx := len(m.Prompts) - 1
	if idx < len(m.Responses) {
		return m.Responses[idx], nil
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1], nil
	}
	return "", nil
}
