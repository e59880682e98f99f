package assessment

// The static diagnostic question bank. Option order inside each style
// question follows the canonical category order; the explicit Category tag is
// what scoring reads.

const defaultSubject = "Matemática"

var knowledgeBank = map[string][]DiagnosticQuestion{
	"Matemática": {
		{
			ID:            "1",
			Prompt:        "Qual é o resultado de 2x + 5 = 15?",
			Options:       []string{"x = 5", "x = 10", "x = 7.5", "x = 20"},
			CorrectAnswer: 0,
			Difficulty:    Beginner,
			Topic:         "Álgebra Básica",
			Explanation:   "Para resolver: 2x + 5 = 15, subtraímos 5 de ambos os lados: 2x = 10, depois dividimos por 2: x = 5",
		},
		{
			ID:            "2",
			Prompt:        "Qual é a derivada de f(x) = x²?",
			Options:       []string{"2x", "x", "2", "x²"},
			CorrectAnswer: 0,
			Difficulty:    Intermediate,
			Topic:         "Cálculo",
			Explanation:   "A derivada de x² é 2x, usando a regra da potência: d/dx(xⁿ) = n·xⁿ⁻¹",
		},
		{
			ID:            "3",
			Prompt:        "Qual é o valor de sen(π/2)?",
			Options:       []string{"0", "1", "-1", "√2/2"},
			CorrectAnswer: 1,
			Difficulty:    Intermediate,
			Topic:         "Trigonometria",
			Explanation:   "sen(π/2) = sen(90°) = 1, pois é o valor máximo da função seno",
		},
	},
	"Física": {
		{
			ID:            "1",
			Prompt:        "Qual é a unidade de força no Sistema Internacional?",
			Options:       []string{"Joule", "Newton", "Watt", "Pascal"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Mecânica",
			Explanation:   "A unidade de força no SI é o Newton (N), definida como kg⋅m/s²",
		},
		{
			ID:            "2",
			Prompt:        "Se um objeto cai livremente, qual é sua aceleração?",
			Options:       []string{"0 m/s²", "9,8 m/s²", "10 m/s²", "Depende da massa"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Cinemática",
			Explanation:   "A aceleração da gravidade na Terra é aproximadamente 9,8 m/s², independente da massa",
		},
		{
			ID:            "3",
			Prompt:        "Qual lei descreve a relação F = ma?",
			Options:       []string{"1ª Lei de Newton", "2ª Lei de Newton", "3ª Lei de Newton", "Lei da Gravitação"},
			CorrectAnswer: 1,
			Difficulty:    Intermediate,
			Topic:         "Dinâmica",
			Explanation:   "A 2ª Lei de Newton estabelece que F = ma, relacionando força, massa e aceleração",
		},
	},
	"Química": {
		{
			ID:            "1",
			Prompt:        "Qual é o símbolo químico do ouro?",
			Options:       []string{"Go", "Au", "Or", "Ag"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Tabela Periódica",
			Explanation:   "O símbolo do ouro é Au, derivado do latim \"aurum\"",
		},
		{
			ID:            "2",
			Prompt:        "Quantos elétrons tem um átomo neutro de carbono?",
			Options:       []string{"4", "6", "8", "12"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Estrutura Atômica",
			Explanation:   "O carbono tem número atômico 6, logo tem 6 prótons e 6 elétrons quando neutro",
		},
		{
			ID:            "3",
			Prompt:        "Qual é o pH de uma solução neutra?",
			Options:       []string{"0", "7", "14", "1"},
			CorrectAnswer: 1,
			Difficulty:    Intermediate,
			Topic:         "Ácidos e Bases",
			Explanation:   "Uma solução neutra tem pH = 7, onde [H⁺] = [OH⁻]",
		},
	},
	"Biologia": {
		{
			ID:            "1",
			Prompt:        "Qual organela é responsável pela respiração celular?",
			Options:       []string{"Núcleo", "Mitocôndria", "Ribossomo", "Vacúolo"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Citologia",
			Explanation:   "A mitocôndria é a organela responsável pela respiração celular e produção de ATP",
		},
		{
			ID:            "2",
			Prompt:        "Qual é a molécula que carrega informação genética?",
			Options:       []string{"RNA", "DNA", "Proteína", "Lipídio"},
			CorrectAnswer: 1,
			Difficulty:    Beginner,
			Topic:         "Genética",
			Explanation:   "O DNA (ácido desoxirribonucleico) é a molécula que armazena a informação genética",
		},
		{
			ID:            "3",
			Prompt:        "Qual processo converte CO₂ em glicose nas plantas?",
			Options:       []string{"Respiração", "Fotossíntese", "Fermentação", "Digestão"},
			CorrectAnswer: 1,
			Difficulty:    Intermediate,
			Topic:         "Fisiologia Vegetal",
			Explanation:   "A fotossíntese converte CO₂ e H₂O em glicose usando energia luminosa",
		},
	},
}

var styleBank = []LearningStyleQuestion{
	{
		ID:     "ls1",
		Prompt: "Como você prefere receber explicações?",
		Options: []StyleOption{
			{Text: "Através de diagramas e imagens", Category: Visual},
			{Text: "Ouvindo explicações detalhadas", Category: Auditory},
			{Text: "Fazendo exercícios práticos", Category: Kinesthetic},
			{Text: "Lendo textos e anotações", Category: ReadingWriting},
		},
	},
	{
		ID:     "ls2",
		Prompt: "Quando estuda, você prefere:",
		Options: []StyleOption{
			{Text: "Ver vídeos e gráficos coloridos", Category: Visual},
			{Text: "Escutar podcasts ou áudios", Category: Auditory},
			{Text: "Fazer experimentos ou atividades", Category: Kinesthetic},
			{Text: "Ler livros e fazer resumos", Category: ReadingWriting},
		},
	},
	{
		ID:     "ls3",
		Prompt: "Para memorizar algo novo, você:",
		Options: []StyleOption{
			{Text: "Cria mapas mentais visuais", Category: Visual},
			{Text: "Repete em voz alta", Category: Auditory},
			{Text: "Pratica fazendo exercícios", Category: Kinesthetic},
			{Text: "Escreve várias vezes", Category: ReadingWriting},
		},
	},
	{
		ID:     "ls4",
		Prompt: "Em uma aula, você aprende melhor quando:",
		Options: []StyleOption{
			{Text: "O professor usa slides e imagens", Category: Visual},
			{Text: "O professor explica falando", Category: Auditory},
			{Text: "Há atividades práticas", Category: Kinesthetic},
			{Text: "Você pode tomar notas detalhadas", Category: ReadingWriting},
		},
	},
}

// KnowledgeQuestions returns the diagnostic questions for a subject. Unknown
// subjects fall back to the default set.
func KnowledgeQuestions(subjectName string) []DiagnosticQuestion {
	if qs, ok := knowledgeBank[subjectName]; ok {
		return qs
	}
	return knowledgeBank[defaultSubject]
}

// LearningStyleQuestions returns the subject-independent style inventory.
func LearningStyleQuestions() []LearningStyleQuestion {
	return styleBank
}

// Subjects lists the subject names with a dedicated question set.
func Subjects() []string {
	names := make([]string, 0, len(knowledgeBank))
	for name := range knowledgeBank {
		names = append(names, name)
	}
	return names
}
