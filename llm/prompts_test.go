package llm

import (
	"strings"
	"testing"

	"github.com/santiagomed/politica/policy"
	"github.com/stretchr/testify/assert"
)

func sampleRequest() *policy.Request {
	req := policy.DefaultRequest()
	req.StoreName = "Loja Top!"
	req.ContactEmail = "sac@lojatop.com.br"
	req.ReturnWindow = 9
	req.ExchangeWindow = 41
	return req
}

func TestBuildPolicyPromptContainsFields(t *testing.T) {
	req := sampleRequest()
	prompt := BuildPolicyPrompt(req)

	assert.Contains(t, prompt, "Loja Top!")
	assert.Contains(t, prompt, "sac@lojatop.com.br")
	assert.Contains(t, prompt, "9 dias")
	assert.Contains(t, prompt, "41 dias")
	assert.Contains(t, prompt, "Produto na embalagem original, Sem sinais de uso ou danos, Acompanhado da nota fiscal")
	assert.Contains(t, prompt, "Reembolso total do valor pago, Crédito na loja para futuras compras")
}

func TestBuildPolicyPromptSections(t *testing.T) {
	prompt := BuildPolicyPrompt(sampleRequest())

	sections := []string{
		"1. Direito de Arrependimento",
		"2. Trocas",
		"3. Condições para Troca e Devolução",
		"4. Procedimento para Solicitação",
		"5. Análise e Opções de Restituição",
		"6. Custos de Frete",
		"7. Contato",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(prompt, s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
}

func TestBuildPolicyPromptCatalogOrder(t *testing.T) {
	req := sampleRequest()
	req.Conditions = []policy.Condition{policy.NoWashOrOdor, policy.WithInvoice}
	req.RefundOptions = []policy.RefundOption{policy.ExchangeSizeOrColor, policy.StoreCredit}

	prompt := BuildPolicyPrompt(req)

	assert.Contains(t, prompt, "Acompanhado da nota fiscal, Sem sinais de lavagem, odores ou manchas")
	assert.Contains(t, prompt, "Crédito na loja para futuras compras, Troca pelo mesmo produto em outro tamanho ou cor")
}

func TestBuildPolicyPromptDeterministic(t *testing.T) {
	req := sampleRequest()
	assert.Equal(t, BuildPolicyPrompt(req), BuildPolicyPrompt(req))
}
