package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
	"github.com/de-tools/risk-atlas/pkg/services/bank"
)

// Collector runs the interactive prompt loop over an injected reader and
// writer, so tests can script a whole assessment.
type Collector struct {
	r *bufio.Reader
	w io.Writer
}

func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{r: bufio.NewReader(in), w: out}
}

// OrgName prompts until a non-empty organisation name is entered.
func (c *Collector) OrgName() (string, error) {
	for {
		fmt.Fprint(c.w, "\nOrganisation name: ")
		line, err := c.readLine()
		if err != nil {
			return "", fmt.Errorf("input ended before an organisation name was entered: %w", domain.ErrInvalidInput)
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		fmt.Fprintln(c.w, "Organisation name cannot be empty.")
	}
}

// Collect walks every domain and question in bank order and gathers yes/no
// answers keyed by question ID.
func (c *Collector) Collect(b bank.Bank) (domain.Answers, error) {
	answers := make(domain.Answers, b.QuestionCount())
	for _, d := range b.Domains {
		fmt.Fprintf(c.w, "\n%s\n%s\n", headerStyle.Render("DOMAIN: "+d.Name), separator())
		for i, q := range d.Questions {
			answer, err := c.askYesNo(q.Text, i+1, len(d.Questions))
			if err != nil {
				return nil, err
			}
			answers[q.ID] = answer
		}
	}
	return answers, nil
}

// Confirm asks a one-off yes/no question, e.g. the export offer.
func (c *Collector) Confirm(prompt string) (bool, error) {
	return c.askYesNo(prompt, 0, 0)
}

func (c *Collector) askYesNo(text string, index, total int) (bool, error) {
	for {
		if total > 0 {
			fmt.Fprintf(c.w, "\n%s %s\n", mutedStyle.Render(fmt.Sprintf("[%d/%d]", index, total)), text)
		} else {
			fmt.Fprintf(c.w, "\n%s\n", text)
		}
		fmt.Fprint(c.w, "Answer (y/n): ")

		line, err := c.readLine()
		if err != nil {
			return false, fmt.Errorf("input ended before all questions were answered: %w", domain.ErrInvalidInput)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.w, "Please answer 'y' for Yes or 'n' for No.")
	}
}

// readLine tolerates a final line without a trailing newline.
func (c *Collector) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
