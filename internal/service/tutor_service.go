package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"tutoria_backend/internal/config"
	"tutoria_backend/internal/model"
	"tutoria_backend/internal/repository"
	"tutoria_backend/internal/util"
	"tutoria_backend/pkg/monitoring"

	"google.golang.org/genai"
	"gorm.io/gorm"
)

// TutorReply is one generated tutor answer with the extracted metadata.
type TutorReply struct {
	Content       string   `json:"content"`
	SourceBook    string   `json:"sourceBook"`
	SourceChapter string   `json:"sourceChapter"`
	YouTubeLinks  []string `json:"youtubeLinks"`
	Fallback      bool     `json:"fallback"`
}

// textGenerator is the slice of the Gemini client the tutor needs; tests
// substitute a canned implementation.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	cfg    *config.AIConfig
}

func newGeminiGenerator(ctx context.Context, cfg *config.AIConfig) (*geminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client, cfg: cfg}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(g.cfg.Temperature)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(g.cfg.MaxOutputTokens),
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, genCfg)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// failingGenerator stands in when the Gemini client cannot be built, so every
// question gets the fallback answer instead of crashing the server.
type failingGenerator struct {
	err error
}

func (g *failingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", g.err
}

type TutorService struct {
	ConversationRepo *repository.ConversationRepository
	SubjectRepo      *repository.SubjectRepository
	BookRepo         *repository.BookRepository
	generator        textGenerator
}

func NewTutorService(ctx context.Context, conversationRepo *repository.ConversationRepository, subjectRepo *repository.SubjectRepository, bookRepo *repository.BookRepository, cfg *config.AIConfig) (*TutorService, error) {
	var gen textGenerator
	gen, err := newGeminiGenerator(ctx, cfg)
	if err != nil {
		gen = &failingGenerator{err: err}
	}
	return &TutorService{
		ConversationRepo: conversationRepo,
		SubjectRepo:      subjectRepo,
		BookRepo:         bookRepo,
		generator:        gen,
	}, err
}

func (s *TutorService) CreateConversation(userID uint, subjectID, title string) (*model.Conversation, error) {
	if _, err := s.SubjectRepo.FindByID(subjectID); err != nil {
		return nil, util.ErrSubjectNotFound
	}
	if title == "" {
		title = "Nova conversa"
	}
	conversation := &model.Conversation{
		UserID:    userID,
		SubjectID: subjectID,
		Title:     title,
	}
	if err := s.ConversationRepo.Create(conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (s *TutorService) ListConversations(userID uint) ([]model.Conversation, error) {
	return s.ConversationRepo.FindByUserID(userID)
}

func (s *TutorService) GetConversation(id string, userID uint) (*model.Conversation, error) {
	conversation, err := s.ConversationRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConversationNotFound
		}
		return nil, err
	}
	return conversation, nil
}

func (s *TutorService) DeleteConversation(id string, userID uint) error {
	if _, err := s.GetConversation(id, userID); err != nil {
		return err
	}
	return s.ConversationRepo.Delete(id, userID)
}

func (s *TutorService) Messages(conversationID string, userID uint) ([]model.Message, error) {
	if _, err := s.GetConversation(conversationID, userID); err != nil {
		return nil, err
	}
	return s.ConversationRepo.FindMessages(conversationID)
}

// SendMessage stores the student's question, asks the model and stores the
// reply. A generation failure degrades to a friendly fallback answer instead
// of an error; the conversation never loses the question.
func (s *TutorService) SendMessage(ctx context.Context, conversationID string, userID uint, content string) (*model.Message, error) {
	conversation, err := s.GetConversation(conversationID, userID)
	if err != nil {
		return nil, err
	}
	subject, err := s.SubjectRepo.FindByID(conversation.SubjectID)
	if err != nil {
		return nil, util.ErrSubjectNotFound
	}

	question := &model.Message{
		ConversationID: conversationID,
		Content:        content,
		IsAI:           false,
	}
	if err := s.ConversationRepo.AddMessage(question); err != nil {
		return nil, err
	}

	books, _ := s.BookRepo.FindBySubjectID(subject.ID, true)
	reply := s.Ask(ctx, subject, books, content)

	answer := &model.Message{
		ConversationID: conversationID,
		Content:        reply.Content,
		IsAI:           true,
		SourceBook:     reply.SourceBook,
		SourceChapter:  reply.SourceChapter,
		YouTubeLinks:   reply.YouTubeLinks,
	}
	if err := s.ConversationRepo.AddMessage(answer); err != nil {
		return nil, err
	}

	// Keep the thread ordered by latest activity.
	_ = s.ConversationRepo.Update(conversation)

	return answer, nil
}

// Ask generates a tutor answer for a subject question.
func (s *TutorService) Ask(ctx context.Context, subject *model.Subject, books []model.Book, question string) *TutorReply {
	prompt := buildTutorPrompt(subject, books, question)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		monitoring.TutorRequestCounter.WithLabelValues(subject.Name, "fallback").Inc()
		return fallbackReply(subject.Name)
	}
	monitoring.TutorRequestCounter.WithLabelValues(subject.Name, "ok").Inc()

	links := ExtractYouTubeLinks(text)
	if len(links) == 0 {
		links = fallbackYouTubeLinks(subject.Name)
	}
	book, chapter := ExtractSource(text)
	if book == "" {
		book = randomBook(subject.Name, books)
	}
	if chapter == "" {
		chapter = fmt.Sprintf("Capítulo %d", rand.Intn(15)+1)
	}

	return &TutorReply{
		Content:       strings.TrimSpace(text),
		SourceBook:    book,
		SourceChapter: chapter,
		YouTubeLinks:  links,
	}
}

func buildTutorPrompt(subject *model.Subject, books []model.Book, question string) string {
	var bibliography strings.Builder
	for _, b := range books {
		fmt.Fprintf(&bibliography, "%s - %s\n", b.Title, b.Author)
	}
	if bibliography.Len() == 0 {
		for _, title := range fallbackBibliography(subject.Name) {
			bibliography.WriteString(title + "\n")
		}
	}

	return fmt.Sprintf(`Você é um professor particular especializado em %[1]s, muito carinhoso e didático. %[2]s

Contexto da disciplina: %[1]s - %[2]s

Bibliografia de referência para %[1]s:
%[3]s

Pergunta do aluno: "%[4]s"

INSTRUÇÕES IMPORTANTES:
1. Responda como se estivesse ensinando para uma criança curiosa de 10-15 anos
2. Use linguagem simples, carinhosa e encorajadora
3. Base sua resposta em conhecimento acadêmico sólido, mas explique de forma lúdica
4. SEMPRE inclua 2-3 links do YouTube que ensinem o tópico de forma prática e divertida
5. Cite uma fonte bibliográfica específica (livro e capítulo) ao final
6. Use emojis para tornar a explicação mais visual e divertida
7. Mantenha a resposta entre 200-300 palavras
8. Se a pergunta não for da disciplina, redirecione com carinho para o tema

FORMATO DA RESPOSTA:
[Saudação carinhosa com emoji]

[Explicação didática e divertida com emojis]

🎬 **Vídeos que vão te ajudar:**
• [Título do vídeo 1] - https://youtube.com/watch?v=[ID_REAL]
• [Título do vídeo 2] - https://youtube.com/watch?v=[ID_REAL]

📚 **Fonte:** [Nome do livro] - [Capítulo específico]

[Pergunta encorajadora para continuar o aprendizado]

IMPORTANTE: Use links REAIS do YouTube que existem e são educativos sobre o tópico perguntado.`,
		subject.Name, subject.AgentDescription, bibliography.String(), question)
}

var youtubeLinkRe = regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=[\w-]+`)

// ExtractYouTubeLinks pulls every YouTube watch URL out of a generated answer.
func ExtractYouTubeLinks(text string) []string {
	return youtubeLinkRe.FindAllString(text, -1)
}

var sourceRe = regexp.MustCompile(`(?m)\*\*Fonte:\*\*\s*(.+?)\s*-\s*(.+?)\s*$`)

// ExtractSource pulls the "**Fonte:** book - chapter" citation out of a
// generated answer. Both values are empty when the model skipped the format.
func ExtractSource(text string) (book, chapter string) {
	m := sourceRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

var fallbackBooks = map[string][]string{
	"Matemática": {"Cálculo - James Stewart", "Álgebra Linear - David Lay", "Fundamentos de Matemática - Gelson Iezzi"},
	"Física":     {"Física Conceitual - Paul Hewitt", "Fundamentos de Física - Halliday", "Física para Cientistas - Serway"},
	"Química":    {"Química Geral - Petrucci", "Química Orgânica - Solomons", "Atkins - Físico-Química"},
	"Biologia":   {"Biologia Celular - Lodish", "Campbell - Biologia", "Bioquímica - Lehninger"},
}

func fallbackBibliography(subject string) []string {
	if books, ok := fallbackBooks[subject]; ok {
		return books
	}
	return fallbackBooks["Matemática"]
}

func randomBook(subject string, books []model.Book) string {
	if len(books) > 0 {
		b := books[rand.Intn(len(books))]
		return b.Title + " - " + b.Author
	}
	titles := fallbackBibliography(subject)
	return titles[rand.Intn(len(titles))]
}

var fallbackVideos = map[string][]string{
	"Matemática": {
		"Matemática Divertida - https://youtube.com/watch?v=4-Y3jxmLq7w",
		"Resolução de Problemas Passo a Passo - https://youtube.com/watch?v=WUvTyaaNkzM",
	},
	"Física": {
		"Física no Dia a Dia - https://youtube.com/watch?v=ZM8ECpBuQYE",
		"Experimentos Caseiros de Física - https://youtube.com/watch?v=wupToqz1e2g",
	},
	"Química": {
		"Química Maluca - https://youtube.com/watch?v=FSyAehMdpyI",
		"Reações Químicas Divertidas - https://youtube.com/watch?v=yQP4UJhNn0I",
	},
	"Biologia": {
		"Biologia Animada - https://youtube.com/watch?v=URUJD5NEXC8",
		"Mundo Animal - https://youtube.com/watch?v=QImCld9YubE",
	},
}

func fallbackYouTubeLinks(subject string) []string {
	if links, ok := fallbackVideos[subject]; ok {
		return links
	}
	return fallbackVideos["Matemática"]
}

func fallbackReply(subject string) *TutorReply {
	links := fallbackYouTubeLinks(subject)
	var sb strings.Builder
	fmt.Fprintf(&sb, "🤗 Oi! Estou com um probleminha técnico agora, mas não se preocupe! Como seu professor de %s, vou te ajudar assim que tudo voltar ao normal.\n\n", subject)
	sb.WriteString("🎬 **Enquanto isso, que tal assistir esses vídeos?**\n")
	for _, link := range links {
		sb.WriteString("• " + link + "\n")
	}
	sb.WriteString("\n💪 Não desista! Aprender é uma aventura incrível!")

	titles := fallbackBibliography(subject)
	return &TutorReply{
		Content:       sb.String(),
		SourceBook:    titles[rand.Intn(len(titles))],
		SourceChapter: fmt.Sprintf("Capítulo %d", rand.Intn(15)+1),
		YouTubeLinks:  ExtractYouTubeLinks(sb.String()),
		Fallback:      true,
	}
}
