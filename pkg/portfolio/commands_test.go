package portfolio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcaldas/shellfolio/pkg/content"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/registry"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
)

var fixedTime = time.Date(2026, time.October, 19, 14, 3, 0, 0, time.UTC)

func testBundle() *content.Bundle {
	return &content.Bundle{
		Profile: content.Profile{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Links: content.Links{
				GitHub:   "https://github.com/ada",
				LinkedIn: "https://www.linkedin.com/in/ada",
				Twitter:  "https://twitter.com/ada_l",
			},
			About: content.About{
				Intro:        "First programmer.",
				Description:  "Wrote notes on the Analytical Engine.",
				Philosophy:   "Imagination is the discovering faculty.",
				CurrentFocus: []string{"Bernoulli numbers", "Looms"},
			},
			Education: []content.Education{
				{Degree: "Mathematics", Institution: "Private tutors", Period: "1830s", Description: "With De Morgan."},
			},
		},
		Skills: content.Skills{Categories: []content.SkillCategory{
			{Icon: "☁️", Name: "Cloud", Color: "prompt-cyan", Skills: []string{"AWS", "GCP"}},
			{Icon: "💻", Name: "Languages", Skills: []string{"Go"}},
		}},
		Projects: content.Projects{Projects: []content.Project{
			{Icon: "🚀", Title: "Engine Notes", Description: "Note **G**", Technologies: []string{"Paper", "Ink"}, Link: "https://example.com/g"},
			{Icon: "📈", Title: "No Link", Description: "Plain", Technologies: []string{"Go"}},
		}},
		Experience: content.Experience{Positions: []content.Position{
			{Title: "Analyst", Company: "Babbage & Co", Period: "1842 - 1843", Description: "Translated Menabrea."},
		}},
	}
}

func newTestRegistry(t *testing.T) *registry.Registry[render.Doc] {
	t.Helper()
	reg, err := NewRegistry(testBundle(), Options{Clock: func() time.Time { return fixedTime }})
	require.NoError(t, err)
	return reg
}

func run(t *testing.T, reg *registry.Registry[render.Doc], name string, args ...string) string {
	t.Helper()
	cmd, ok := reg.Lookup(name)
	require.True(t, ok, "command %s", name)
	doc, err := cmd.Execute(args)
	require.NoError(t, err)
	return render.Plain(doc, 40)
}

func TestRegistryOrder(t *testing.T) {
	reg := newTestRegistry(t)

	assert.Equal(t, []string{
		"help", "about", "skills", "projects", "experience", "education", "contact", "clear",
		"whoami", "neofetch", "sudo", "exit", "rm", "ls", "pwd", "cd", "cat", "echo", "date", "history",
	}, reg.Names())
	assert.Equal(t, MainCommands, reg.Names()[:len(MainCommands)])
	for _, name := range EasterEggCommands {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}
	for _, cmd := range reg.Commands() {
		assert.NotEmpty(t, cmd.Description, cmd.Name)
	}
}

func TestContentCommands(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("help", func(t *testing.T) {
		out := run(t, reg, "help")
		assert.Contains(t, out, "Available Commands:")
		assert.Contains(t, out, "  experience  - View my work experience")
		assert.Contains(t, out, "  help        - Show this help message")
		assert.Contains(t, out, "whoami, neofetch, sudo, rm -rf /, exit")
	})

	t.Run("about", func(t *testing.T) {
		out := run(t, reg, "about")
		assert.Contains(t, out, "  About Ada Lovelace")
		assert.Contains(t, out, strings.Repeat("━", 40))
		assert.Contains(t, out, "“Imagination is the discovering faculty.”")
		assert.Contains(t, out, "  • Looms")
		assert.Contains(t, out, "Type 'skills'")
	})

	t.Run("skills", func(t *testing.T) {
		out := run(t, reg, "skills")
		assert.Contains(t, out, "☁️  Cloud:")
		assert.Contains(t, out, "    AWS, GCP")
		assert.Contains(t, out, "💻  Languages:")
	})

	t.Run("projects", func(t *testing.T) {
		out := run(t, reg, "projects")
		assert.Contains(t, out, "🚀 Engine Notes")
		assert.Contains(t, out, "Note **G**")
		assert.Contains(t, out, "Paper • Ink")
		assert.Contains(t, out, "View Project → https://example.com/g")
		assert.Equal(t, 1, strings.Count(out, "View Project"))
	})

	t.Run("experience", func(t *testing.T) {
		out := run(t, reg, "experience")
		assert.Contains(t, out, "  Analyst")
		assert.Contains(t, out, "  @ Babbage & Co")
		assert.Contains(t, out, "1842 - 1843")
	})

	t.Run("education", func(t *testing.T) {
		out := run(t, reg, "education")
		assert.Contains(t, out, "🎓 Mathematics")
		assert.Contains(t, out, "@ Private tutors")
	})

	t.Run("contact", func(t *testing.T) {
		out := run(t, reg, "contact")
		assert.Contains(t, out, "📧 Email:    ada@example.com")
		assert.Contains(t, out, "💼 LinkedIn: www.linkedin.com/in/ada")
		assert.Contains(t, out, "🐙 GitHub:   github.com/ada")
		assert.Contains(t, out, "🐦 Twitter:  @ada_l")
	})
}

func TestEasterEggs(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "whoami", want: []string{"visitor", "curious soul"}},
		{name: "neofetch", want: []string{"|o_o |", "visitor@ada-lovelace", "Host: Ada Lovelace's Portfolio"}},
		{name: "sudo", want: []string{"usage: sudo command"}},
		{name: "sudo", args: []string{"rm", "-rf"}, want: []string{"not in the sudoers file", "Nice try though!"}},
		{name: "exit", want: []string{"Logout", "can't escape"}},
		{name: "rm", args: []string{"-rf", "/"}, want: []string{"NICE TRY!", "System integrity: 100% ✓"}},
		{name: "rm", args: []string{"-rf", "/*"}, want: []string{"NICE TRY!"}},
		{name: "rm", args: []string{"notes.txt"}, want: []string{"rm: cannot remove 'notes.txt': Permission denied"}},
		{name: "rm", want: []string{"rm: cannot remove '': Permission denied"}},
		{name: "ls", want: []string{"about.txt    skills.json    projects/    experience.md    contact.yml"}},
		{name: "pwd", want: []string{"/home/visitor/portfolio"}},
		{name: "cd", args: []string{"/etc"}, want: []string{"Staying right here"}},
		{name: "cat", want: []string{"cat: missing operand"}},
		{name: "cat", args: []string{"about.txt"}, want: []string{"About Ada Lovelace"}},
		{name: "cat", args: []string{"skills.json"}, want: []string{"Try running 'skills' as a command instead!"}},
		{name: "cat", args: []string{"contact.yml"}, want: []string{"Try running 'contact'"}},
		{name: "cat", args: []string{"projects/"}, want: []string{"Try running 'projects/'"}},
		{name: "echo", args: []string{"Hello", "World"}, want: []string{"Hello World"}},
		{name: "date", want: []string{"Mon Oct 19 2026 14:03:00 GMT+0000 (UTC)"}},
		{name: "history", want: []string{"↑ and ↓"}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			out := run(t, reg, tt.name, tt.args...)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}

	t.Run("echo without args is an empty line", func(t *testing.T) {
		assert.Equal(t, "", run(t, reg, "echo"))
	})
}

func TestClearReturnsSentinel(t *testing.T) {
	reg := newTestRegistry(t)
	cmd, ok := reg.Lookup("CLEAR")
	require.True(t, ok)

	_, err := cmd.Execute(nil)
	assert.True(t, errors.Is(err, registry.ErrClear))
}

func TestNewCommands_DefaultClock(t *testing.T) {
	c := NewCommands(testBundle(), Options{})
	before := time.Now()
	assert.False(t, c.clock().Before(before))
}

func TestSessionWithPortfolio(t *testing.T) {
	reg := newTestRegistry(t)
	session := terminal.NewSession[render.Doc](reg, Formatter{}, terminal.Options{Logger: logging.NewDisabledLogger()})

	session.Dispatch("about")
	session.Dispatch("frobnicate --now")
	session.SetBuffer("e")
	session.Complete()

	out := render.Plain(TranscriptDoc(DefaultPrompt(), session.Transcript()), 30)
	assert.Contains(t, out, "Welcome to my interactive portfolio!")
	assert.Contains(t, out, "visitor@portfolio:~$ about")
	assert.Contains(t, out, "Command not found: frobnicate")
	assert.Contains(t, out, "visitor@portfolio:~$ e\n")
	assert.Contains(t, out, "experience  education  exit  echo")

	session.Dispatch("clear")
	assert.Empty(t, session.Transcript())
}
