package llm

import (
	"fmt"
	"strings"

	"github.com/santiagomed/politica/policy"
)

func joinConditions(cs []policy.Condition) string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.String()
	}
	return strings.Join(labels, ", ")
}

func joinRefundOptions(opts []policy.RefundOption) string {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.String()
	}
	return strings.Join(labels, ", ")
}

// BuildPolicyPrompt turns a request into the instruction sent to the model.
// The output depends only on req.
func BuildPolicyPrompt(req *policy.Request) string {
	conditions := joinConditions(req.SortedConditions())
	refunds := joinRefundOptions(req.SortedRefundOptions())

	return fmt.Sprintf(`Atue como especialista em redação de documentos jurídicos e comerciais para o e-commerce brasileiro.
Escreva uma "Política de Trocas e Devoluções" clara, profissional e completa, em conformidade com o Código de Defesa do Consumidor.

Dados fornecidos pelo lojista:
- Nome da loja: %[1]s
- Prazo para devolução por arrependimento: %[2]d dias corridos, contados a partir do recebimento.
- Prazo para troca (por defeito ou por outro produto): %[3]d dias corridos, contados a partir do recebimento.
- E-mail para contato e solicitações: %[4]s
- Condições que o produto deve apresentar para troca ou devolução: %[5]s.
- Opções oferecidas ao cliente após a aprovação da troca ou devolução: %[6]s.

Organize a política nas seções abaixo, com títulos claros e numerados:

1. Direito de Arrependimento (Devolução)
   - Explique o prazo de %[2]d dias previsto no Código de Defesa do Consumidor.
   - Descreva como o cliente solicita a devolução.

2. Trocas
   - Diferencie a troca por defeito da troca por outro produto, quando aplicável.
   - Informe o prazo de %[3]d dias.
   - Descreva como solicitar a troca.

3. Condições para Troca e Devolução
   - Liste de forma objetiva as condições exigidas: %[5]s.
   - Informe que produtos fora dessas condições serão recusados e reenviados ao remetente.

4. Procedimento para Solicitação
   - Apresente um passo a passo simples, por exemplo: 1. Escrever para %[4]s. 2. Informar o número do pedido e o motivo. 3. Aguardar as instruções de envio.

5. Análise e Opções de Restituição
   - Explique que o produto passará por análise ao chegar ao centro de distribuição da %[1]s.
   - Aprovada a análise, apresente as opções disponíveis: %[6]s. Explique como cada opção funciona (por exemplo, como o estorno é feito e como o crédito é liberado).

6. Custos de Frete
   - Informe que, na primeira troca ou na devolução por arrependimento, o frete de retorno é pago pela %[1]s. Em trocas seguintes do mesmo pedido, o frete fica a cargo do cliente.

7. Contato
   - Encerre reforçando o canal principal de atendimento: %[4]s.

Use um tom formal, porém acessível e tranquilizador, que mostre o compromisso da %[1]s com a satisfação do consumidor.
Não inclua introduções como "Aqui está a política" nem despedidas. Responda apenas com o texto completo da política, começando pelo título.
`, req.StoreName, req.ReturnWindow, req.ExchangeWindow, req.ContactEmail, conditions, refunds)
}
