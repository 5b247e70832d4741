package analyzing

import "strings"

const promptHeader = `Você é um analista de dados sênior especializado em vendas e business intelligence.
Analise os seguintes dados de vendas e forneça insights estratégicos e acionáveis.

**Dados de Vendas:**
`

const promptSections = `

**Análise Solicitada:**
1. **📊 Resumo Executivo:** Principais números e tendências em 2-3 frases
2. **🏆 Top Performers:** Produtos e regiões com melhor desempenho
3. **⚠️ Pontos de Atenção:** Produtos ou regiões que precisam de foco
4. **📈 Tendências Temporais:** Análise mês a mês (se aplicável)
5. **💡 Recomendações Estratégicas:** 3-4 ações concretas para melhorar vendas
6. **🎯 Oportunidades:** Onde focar esforços para maximizar resultados
`

const promptQuestion = `

**🔍 Pergunta Específica do Usuário:**
`

const promptQuestionFooter = `

Por favor, responda à pergunta específica APÓS a análise padrão.
`

const promptFormat = `

**Formato da Resposta:**
- Use emojis para tornar a resposta mais visual
- Estruture com títulos claros
- Inclua números específicos quando relevante
- Seja conciso mas detalhado
- Use linguagem profissional mas acessível
`

// BuildPrompt monta o prompt enviado ao serviço de geração. Os dados entram
// exatamente como foram digitados; a pergunta só entra quando não está em branco.
func BuildPrompt(data, question string) string {
	var b strings.Builder

	b.WriteString(promptHeader)
	b.WriteString(data)
	b.WriteString(promptSections)

	if strings.TrimSpace(question) != "" {
		b.WriteString(promptQuestion)
		b.WriteString(question)
		b.WriteString(promptQuestionFooter)
	}

	b.WriteString(promptFormat)

	return b.String()
}
