package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tutoria_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYouTubeLinks(t *testing.T) {
	text := `Olá! Vamos aprender!

🎬 **Vídeos que vão te ajudar:**
• Frações Divertidas - https://youtube.com/watch?v=abc123XYZ
• Mais exercícios - https://www.youtube.com/watch?v=def-456

📚 **Fonte:** Cálculo - James Stewart - Capítulo 3`

	links := ExtractYouTubeLinks(text)
	require.Len(t, links, 2)
	assert.Equal(t, "https://youtube.com/watch?v=abc123XYZ", links[0])
	assert.Equal(t, "https://www.youtube.com/watch?v=def-456", links[1])
}

func TestExtractYouTubeLinks_None(t *testing.T) {
	assert.Empty(t, ExtractYouTubeLinks("sem vídeos aqui"))
}

func TestExtractSource(t *testing.T) {
	text := "Explicação...\n\n📚 **Fonte:** Física Conceitual - Capítulo 7\n\nGostou?"

	book, chapter := ExtractSource(text)
	assert.Equal(t, "Física Conceitual", book)
	assert.Equal(t, "Capítulo 7", chapter)
}

func TestExtractSource_Missing(t *testing.T) {
	book, chapter := ExtractSource("resposta sem citação")
	assert.Empty(t, book)
	assert.Empty(t, chapter)
}

func TestBuildTutorPrompt(t *testing.T) {
	subject := &model.Subject{
		Name:             "Química",
		AgentDescription: "Especialista em química para o ensino médio.",
	}
	books := []model.Book{
		{Title: "Química Geral", Author: "Petrucci"},
	}

	prompt := buildTutorPrompt(subject, books, "O que é uma ligação iônica?")

	assert.Contains(t, prompt, "professor particular especializado em Química")
	assert.Contains(t, prompt, "Especialista em química para o ensino médio.")
	assert.Contains(t, prompt, "Química Geral - Petrucci")
	assert.Contains(t, prompt, `"O que é uma ligação iônica?"`)
	assert.Contains(t, prompt, "**Fonte:**")
}

func TestBuildTutorPrompt_NoBooksUsesFallbackBibliography(t *testing.T) {
	subject := &model.Subject{Name: "Biologia"}

	prompt := buildTutorPrompt(subject, nil, "O que é DNA?")

	assert.Contains(t, prompt, "Campbell - Biologia")
}

type cannedGenerator struct {
	text string
	err  error
}

func (g *cannedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

func TestAsk_ExtractsMetadata(t *testing.T) {
	s := &TutorService{generator: &cannedGenerator{text: `🤗 Oi!

A fotossíntese transforma luz em energia!

🎬 **Vídeos que vão te ajudar:**
• Fotossíntese Animada - https://youtube.com/watch?v=xyz789

📚 **Fonte:** Campbell Biologia - Capítulo 10

Quer saber mais?`}}

	reply := s.Ask(context.Background(), &model.Subject{Name: "Biologia"}, nil, "O que é fotossíntese?")

	assert.False(t, reply.Fallback)
	assert.Equal(t, "Campbell Biologia", reply.SourceBook)
	assert.Equal(t, "Capítulo 10", reply.SourceChapter)
	require.Len(t, reply.YouTubeLinks, 1)
	assert.Equal(t, "https://youtube.com/watch?v=xyz789", reply.YouTubeLinks[0])
}

func TestAsk_FillsMissingMetadata(t *testing.T) {
	s := &TutorService{generator: &cannedGenerator{text: "Resposta curta sem formato."}}

	reply := s.Ask(context.Background(), &model.Subject{Name: "Física"}, nil, "O que é força?")

	assert.False(t, reply.Fallback)
	assert.NotEmpty(t, reply.SourceBook)
	assert.True(t, strings.HasPrefix(reply.SourceChapter, "Capítulo "))
	assert.NotEmpty(t, reply.YouTubeLinks)
}

func TestAsk_FallbackOnGenerationError(t *testing.T) {
	s := &TutorService{generator: &cannedGenerator{err: errors.New("quota exceeded")}}

	reply := s.Ask(context.Background(), &model.Subject{Name: "Matemática"}, nil, "Quanto é 2+2?")

	assert.True(t, reply.Fallback)
	assert.Contains(t, reply.Content, "professor de Matemática")
	assert.NotEmpty(t, reply.YouTubeLinks)
	assert.NotEmpty(t, reply.SourceBook)
}
