// Package portfolio is the command set of the portfolio shell: the content
// commands, the easter eggs and the messages the shell prints itself.
package portfolio

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kcaldas/shellfolio/pkg/content"
	"github.com/kcaldas/shellfolio/pkg/registry"
	"github.com/kcaldas/shellfolio/pkg/render"
)

// MainCommands are listed first in help and in the sidebar.
var MainCommands = []string{"help", "about", "skills", "projects", "experience", "education", "contact", "clear"}

// EasterEggCommands are listed in the sidebar below the main commands.
var EasterEggCommands = []string{"whoami", "neofetch"}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

// DateLayout mimics the date format of a browser's Date.toString().
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Options customises the command set.
type Options struct {
	Clock Clock
}

var fileExtension = regexp.MustCompile(`\.(txt|json|md|yml)$`)

// Commands builds the command handlers over a content bundle.
type Commands struct {
	bundle *content.Bundle
	clock  Clock
}

// NewCommands creates the handlers. A nil clock means time.Now.
func NewCommands(bundle *content.Bundle, opts Options) *Commands {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Commands{bundle: bundle, clock: opts.Clock}
}

// NewRegistry registers every portfolio command in display order.
func NewRegistry(bundle *content.Bundle, opts Options) (*registry.Registry[render.Doc], error) {
	return registry.New(NewCommands(bundle, opts).All()...)
}

// All returns the command definitions in registration order.
func (c *Commands) All() []registry.Command[render.Doc] {
	return []registry.Command[render.Doc]{
		{Name: "help", Description: "List all available commands", Execute: c.help},
		{Name: "about", Description: "Learn about me", Execute: c.about},
		{Name: "skills", Description: "View my technical skills", Execute: c.skills},
		{Name: "projects", Description: "Browse my projects", Execute: c.projects},
		{Name: "experience", Description: "View my work experience", Execute: c.experience},
		{Name: "education", Description: "View my education", Execute: c.education},
		{Name: "contact", Description: "Get my contact information", Execute: c.contact},
		{Name: "clear", Description: "Clear the terminal", Execute: clearScreen},
		{Name: "whoami", Description: "Who are you?", Execute: c.whoami},
		{Name: "neofetch", Description: "System information", Execute: c.neofetch},
		{Name: "sudo", Description: "Superuser do", Execute: c.sudo},
		{Name: "exit", Description: "Exit the terminal", Execute: c.exit},
		{Name: "rm", Description: "Remove files", Execute: c.rm},
		{Name: "ls", Description: "List directory contents", Execute: c.ls},
		{Name: "pwd", Description: "Print working directory", Execute: c.pwd},
		{Name: "cd", Description: "Change directory", Execute: c.cd},
		{Name: "cat", Description: "Concatenate and display files", Execute: c.cat},
		{Name: "echo", Description: "Display a line of text", Execute: c.echo},
		{Name: "date", Description: "Display current date and time", Execute: c.date},
		{Name: "history", Description: "Show command history", Execute: c.history},
	}
}

var helpLines = []struct{ name, summary string }{
	{"help", "Show this help message"},
	{"about", "Learn about me"},
	{"skills", "View my technical skills"},
	{"projects", "Browse my projects"},
	{"experience", "View my work experience"},
	{"education", "View my education"},
	{"contact", "Get my contact information"},
	{"clear", "Clear the terminal"},
}

func (c *Commands) help(args []string) (render.Doc, error) {
	b := render.NewBuilder().Line(render.Bold(render.StyleAccent, "Available Commands:"))
	for _, l := range helpLines {
		b.Indented(2, render.Styled(render.StyleAccent, fmt.Sprintf("%-12s", l.name)), render.Text("- "+l.summary))
	}
	return b.Blank().
		Styled(render.StyleMuted, "Easter Eggs:").
		Indented(2, render.Styled(render.StyleMuted, "whoami, neofetch, sudo, rm -rf /, exit")).
		Blank().
		Styled(render.StyleCyan, "Tip: Click commands in the sidebar or use Tab for autocomplete!").
		Doc(), nil
}

func (c *Commands) about(args []string) (render.Doc, error) {
	p := c.bundle.Profile
	b := render.NewBuilder().
		Header("About "+p.Name).
		Blank().
		Line(render.Text(p.About.Intro)).
		Line(render.Text(p.About.Description)).
		Blank().
		Styled(render.StyleMuted, "Philosophy:").
		Indented(2, render.Text("“"+p.About.Philosophy+"”")).
		Blank().
		Styled(render.StyleMuted, "Current Focus:")
	for _, focus := range p.About.CurrentFocus {
		b.Indented(2, render.Text("• "+focus))
	}
	return b.Blank().
		Styled(render.StyleCyan, "Type 'skills' to see my technical expertise!").
		Doc(), nil
}

func (c *Commands) skills(args []string) (render.Doc, error) {
	b := render.NewBuilder().Header("Technical Skills")
	for _, category := range c.bundle.Skills.Categories {
		b.Blank().
			Line(render.Bold(colorStyle(category.Color), category.Icon+"  "+category.Name+":")).
			Indented(4, render.Text(strings.Join(category.Skills, ", ")))
	}
	return b.Blank().
		Styled(render.StyleCyan, "Type 'projects' to see these skills in action!").
		Doc(), nil
}

func (c *Commands) projects(args []string) (render.Doc, error) {
	b := render.NewBuilder().Header("Featured Projects")
	for _, project := range c.bundle.Projects.Projects {
		b.Blank().
			Line(render.Bold(render.StyleAccent, project.Icon+" "+project.Title)).
			Markdown(project.Description).
			Styled(render.StyleMuted, strings.Join(project.Technologies, " • "))
		if project.Link != "" {
			b.Line(render.Link("View Project →", project.Link), render.Styled(render.StyleMuted, " "+project.Link))
		}
	}
	return b.Blank().
		Styled(render.StyleCyan, "Type 'experience' to see my work history!").
		Doc(), nil
}

func (c *Commands) experience(args []string) (render.Doc, error) {
	b := render.NewBuilder().Header("Work Experience")
	for _, position := range c.bundle.Experience.Positions {
		b.Blank().
			Indented(2, render.Bold(render.StyleText, position.Title)).
			Indented(2, render.Styled(render.StyleAccent, "@ "+position.Company)).
			Indented(2, render.Styled(render.StyleMuted, position.Period)).
			Indented(2, render.Styled(render.StyleSecondary, position.Description))
	}
	return b.Blank().
		Styled(render.StyleCyan, "Type 'education' to see my academic background!").
		Doc(), nil
}

func (c *Commands) education(args []string) (render.Doc, error) {
	b := render.NewBuilder().Header("Education")
	for _, edu := range c.bundle.Profile.Education {
		b.Blank().
			Indented(2, render.Bold(render.StyleText, "🎓 "+edu.Degree)).
			Indented(2, render.Styled(render.StyleCyan, "@ "+edu.Institution)).
			Indented(2, render.Styled(render.StyleMuted, edu.Period)).
			Indented(2, render.Styled(render.StyleSecondary, edu.Description))
	}
	return b.Blank().
		Styled(render.StyleCyan, "Type 'contact' to get in touch!").
		Doc(), nil
}

func (c *Commands) contact(args []string) (render.Doc, error) {
	p := c.bundle.Profile
	b := render.NewBuilder().
		Header("Contact Information").
		Blank().
		Line(render.Text("Let's connect! I'm always open to discussing new opportunities,")).
		Line(render.Text("interesting projects, or just chatting about DevOps.")).
		Blank().
		Indented(2, render.Styled(render.StyleAccent, "📧 Email:    "), render.Link(p.Email, "mailto:"+p.Email))
	if p.Links.LinkedIn != "" {
		b.Indented(2, render.Styled(render.StyleAccent, "💼 LinkedIn: "), render.Link(content.StripScheme(p.Links.LinkedIn), p.Links.LinkedIn))
	}
	if p.Links.GitHub != "" {
		b.Indented(2, render.Styled(render.StyleAccent, "🐙 GitHub:   "), render.Link(content.StripScheme(p.Links.GitHub), p.Links.GitHub))
	}
	if p.Links.Twitter != "" {
		b.Indented(2, render.Styled(render.StyleAccent, "🐦 Twitter:  "), render.Link(content.Handle(p.Links.Twitter), p.Links.Twitter))
	}
	return b.Blank().
		Styled(render.StyleGreen, "Looking forward to hearing from you! 🚀").
		Doc(), nil
}

func clearScreen(args []string) (render.Doc, error) {
	return render.Doc{}, registry.ErrClear
}

func (c *Commands) whoami(args []string) (render.Doc, error) {
	return render.NewBuilder().
		Styled(render.StyleGreen, "visitor").
		Blank().
		Styled(render.StyleMuted, "You're a curious soul exploring this terminal portfolio.").
		Styled(render.StyleMuted, "Welcome! Feel free to look around and run some commands.").
		Doc(), nil
}

const tux = `        .--.
       |o_o |
       |:_/ |
      //   \ \
     (|     | )
    /'\_   _/` + "`" + `\
    \___)=(___/`

func (c *Commands) neofetch(args []string) (render.Doc, error) {
	p := c.bundle.Profile
	info := []struct{ key, value string }{
		{"OS", "Portfolio OS 1.0.0"},
		{"Host", p.Name + "'s Portfolio"},
		{"Kernel", "Go Terminal 2024"},
		{"Uptime", "Always online ☁️"},
		{"Shell", "portfolio-bash 5.0"},
		{"Terminal", "Shellfolio TUI"},
		{"CPU", "Your Terminal @ ∞ GHz"},
		{"Memory", "Unlimited thoughts"},
	}

	b := render.NewBuilder().
		Pre(render.StyleAccent, tux).
		Blank().
		Line(render.Bold(render.StyleAccent, "visitor"), render.Text("@"+p.Slug())).
		Styled(render.StyleMuted, "------------------")
	for _, row := range info {
		b.Line(render.Styled(render.StyleAccent, row.key+":"), render.Text(" "+row.value))
	}
	return b.Doc(), nil
}

func (c *Commands) sudo(args []string) (render.Doc, error) {
	if len(args) == 0 {
		return render.NewBuilder().Styled(render.StyleAccent, "usage: sudo command").Doc(), nil
	}
	return render.NewBuilder().
		Styled(render.StyleAccent, "[sudo] password for visitor: ").
		Styled(render.StyleAccent, "Sorry, visitor is not in the sudoers file. This incident will be reported. 🚨").
		Blank().
		Styled(render.StyleMuted, "Nice try though! 😉").
		Doc(), nil
}

func (c *Commands) exit(args []string) (render.Doc, error) {
	return render.NewBuilder().
		Styled(render.StyleYellow, "Logout").
		Blank().
		Styled(render.StyleMuted, "Just kidding! You can't escape this easily.").
		Styled(render.StyleMuted, "Try exploring with 'help' instead! 😄").
		Doc(), nil
}

func (c *Commands) rm(args []string) (render.Doc, error) {
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "-rf /") {
		return render.NewBuilder().
			Line(render.Bold(render.StyleAccent, "🚨 NICE TRY! 🚨")).
			Blank().
			Styled(render.StyleYellow, "You really thought that would work?").
			Styled(render.StyleMuted, "This portfolio is protected by advanced anti-destruction technology.").
			Blank().
			Styled(render.StyleGreen, "System integrity: 100% ✓").
			Doc(), nil
	}
	return render.NewBuilder().
		Styled(render.StyleAccent, fmt.Sprintf("rm: cannot remove '%s': Permission denied", joined)).
		Doc(), nil
}

func (c *Commands) ls(args []string) (render.Doc, error) {
	return render.NewBuilder().
		Styled(render.StyleCyan, "about.txt    skills.json    projects/    experience.md    contact.yml").
		Doc(), nil
}

func (c *Commands) pwd(args []string) (render.Doc, error) {
	return render.NewBuilder().Styled(render.StyleCyan, "/home/visitor/portfolio").Doc(), nil
}

func (c *Commands) cd(args []string) (render.Doc, error) {
	return render.NewBuilder().
		Styled(render.StyleMuted, "Staying right here in the portfolio. Try running a command instead!").
		Doc(), nil
}

func (c *Commands) cat(args []string) (render.Doc, error) {
	if len(args) == 0 {
		return render.NewBuilder().Styled(render.StyleAccent, "cat: missing operand").Doc(), nil
	}
	file := args[0]
	if file == "about.txt" {
		return c.about(nil)
	}
	name := fileExtension.ReplaceAllString(file, "")
	return render.NewBuilder().
		Styled(render.StyleMuted, fmt.Sprintf("Try running '%s' as a command instead!", name)).
		Doc(), nil
}

func (c *Commands) echo(args []string) (render.Doc, error) {
	return render.NewBuilder().Line(render.Text(strings.Join(args, " "))).Doc(), nil
}

func (c *Commands) date(args []string) (render.Doc, error) {
	return render.NewBuilder().Styled(render.StyleCyan, c.clock().Format(DateLayout)).Doc(), nil
}

func (c *Commands) history(args []string) (render.Doc, error) {
	return render.NewBuilder().
		Styled(render.StyleMuted, "Command history is available using ↑ and ↓ arrow keys!").
		Doc(), nil
}

func colorStyle(color string) render.Style {
	switch color {
	case "prompt-green":
		return render.StyleGreen
	case "prompt-cyan":
		return render.StyleCyan
	case "prompt-yellow":
		return render.StyleYellow
	default:
		return render.StyleAccent
	}
}
