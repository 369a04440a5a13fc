package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
	"github.com/de-tools/risk-atlas/pkg/services/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() bank.Bank {
	return bank.Bank{Domains: []domain.Domain{{
		ID:   "access-control",
		Name: "Access Control & Identity Management",
		Questions: []domain.Question{
			{ID: "q1", Text: "MFA enforced?", Weight: 1},
			{ID: "q2", Text: "RBAC implemented?", Weight: 1},
		},
	}}}
}

func TestCollector_OrgName(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("Acme Corp\n"), &out)

	name, err := c.OrgName()
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)
}

func TestCollector_OrgName_RepromptsOnEmpty(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("\n   \nAcme Corp\n"), &out)

	name, err := c.OrgName()
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)
	assert.Contains(t, out.String(), "cannot be empty")
}

func TestCollector_OrgName_EOF(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader(""), &out)

	_, err := c.OrgName()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCollector_Collect(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("y\nNo\n"), &out)

	answers, err := c.Collect(testBank())
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{"q1": true, "q2": false}, answers)
	assert.Contains(t, out.String(), "[1/2]")
	assert.Contains(t, out.String(), "[2/2]")
}

func TestCollector_Collect_AcceptsYesNoVariants(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("YES\n  n  \n"), &out)

	answers, err := c.Collect(testBank())
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{"q1": true, "q2": false}, answers)
}

func TestCollector_Collect_RepromptsOnJunk(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("maybe\nyes\nn\n"), &out)

	answers, err := c.Collect(testBank())
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{"q1": true, "q2": false}, answers)
	assert.Contains(t, out.String(), "Please answer 'y' for Yes or 'n' for No.")
}

func TestCollector_Collect_EOFMidRun(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("y\n"), &out)

	_, err := c.Collect(testBank())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCollector_Collect_FinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("y\nn"), &out)

	answers, err := c.Collect(testBank())
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{"q1": true, "q2": false}, answers)
}

func TestCollector_Confirm(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("y\n"), &out)

	ok, err := c.Confirm("Export report to json?")
	require.NoError(t, err)
	assert.True(t, ok)

	c = NewCollector(strings.NewReader("no\n"), &out)
	ok, err = c.Confirm("Export report to json?")
	require.NoError(t, err)
	assert.False(t, ok)
}
