package gh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabooya/gh-seed/internal/domain"
	"github.com/zabooya/gh-seed/internal/testutil"
)

func TestClient_CheckAuth(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		exec := &testutil.MockExecutor{}
		client := NewClient("acme/widgets", exec)

		require.NoError(t, client.CheckAuth())
		require.Len(t, exec.Commands, 1)
		assert.Equal(t, "gh", exec.Commands[0].Program)
		assert.Equal(t, []string{"auth", "status"}, exec.Commands[0].Args)
	})

	t.Run("unavailable", func(t *testing.T) {
		exec := &testutil.MockExecutor{RunErr: errors.New("gh: command not found")}
		client := NewClient("acme/widgets", exec)

		err := client.CheckAuth()
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestClient_FindMilestone(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("3\n")}}
		client := NewClient("acme/widgets", exec)

		number, found, err := client.FindMilestone("v1.0")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 3, number)

		require.Len(t, exec.Commands, 1)
		args := exec.Commands[0].Args
		assert.Equal(t, "api", args[0])
		assert.Equal(t, "repos/acme/widgets/milestones", args[1])
		assert.Contains(t, args[3], `select(.title == "v1.0")`)
	})

	t.Run("not found", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("\n")}}
		client := NewClient("acme/widgets", exec)

		_, found, err := client.FindMilestone("v1.0")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("command failure", func(t *testing.T) {
		exec := &testutil.MockExecutor{OutputErr: errors.New("api: 500")}
		client := NewClient("acme/widgets", exec)

		_, _, err := client.FindMilestone("v1.0")
		require.Error(t, err)
	})

	t.Run("quotes in title survive jq quoting", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("7")}}
		client := NewClient("acme/widgets", exec)

		_, _, err := client.FindMilestone(`the "big" one`)
		require.NoError(t, err)
		assert.Contains(t, exec.Commands[0].Args[3], `select(.title == "the \"big\" one")`)
	})
}

func TestClient_CreateMilestone(t *testing.T) {
	exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("12\n")}}
	client := NewClient("acme/widgets", exec)

	number, err := client.CreateMilestone("v2.0")
	require.NoError(t, err)
	assert.Equal(t, 12, number)

	args := exec.Commands[0].Args
	assert.Equal(t, []string{"api", "repos/acme/widgets/milestones", "-f", "title=v2.0", "--jq", ".number"}, args)
}

func TestClient_LabelExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("bug\n")}}
		client := NewClient("acme/widgets", exec)

		exists, err := client.LabelExists("bug")
		require.NoError(t, err)
		assert.True(t, exists)

		args := exec.Commands[0].Args
		assert.Equal(t, "label", args[0])
		assert.Equal(t, "list", args[1])
		assert.Contains(t, args, "--repo")
		assert.Contains(t, args, "acme/widgets")
	})

	t.Run("missing", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("")}}
		client := NewClient("acme/widgets", exec)

		exists, err := client.LabelExists("bug")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestClient_CreateLabel(t *testing.T) {
	exec := &testutil.MockExecutor{}
	client := NewClient("acme/widgets", exec)

	require.NoError(t, client.CreateLabel("bug", "0366d6"))

	args := exec.Commands[0].Args
	assert.Equal(t, []string{"label", "create", "bug", "--repo", "acme/widgets", "--color", "0366d6"}, args)
}

func TestClient_CreateIssue(t *testing.T) {
	t.Run("full options", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("https://github.com/acme/widgets/issues/1\n")}}
		client := NewClient("acme/widgets", exec)

		url, err := client.CreateIssue(domain.CreateIssueOptions{
			Title:     "Implement hand ranking",
			Body:      "Compare two hands.",
			Labels:    []string{"enhancement", "core"},
			Milestone: "v1.0",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/widgets/issues/1", url)

		args := exec.Commands[0].Args
		assert.Equal(t, []string{
			"issue", "create",
			"--repo", "acme/widgets",
			"--title", "Implement hand ranking",
			"--body", "Compare two hands.",
			"--label", "enhancement,core",
			"--milestone", "v1.0",
		}, args)
	})

	t.Run("no labels or milestone", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("https://github.com/acme/widgets/issues/2")}}
		client := NewClient("acme/widgets", exec)

		_, err := client.CreateIssue(domain.CreateIssueOptions{Title: "Plain"})
		require.NoError(t, err)

		args := exec.Commands[0].Args
		assert.NotContains(t, args, "--label")
		assert.NotContains(t, args, "--milestone")
	})

	t.Run("empty output means failure", func(t *testing.T) {
		exec := &testutil.MockExecutor{Outputs: [][]byte{[]byte("  \n")}}
		client := NewClient("acme/widgets", exec)

		_, err := client.CreateIssue(domain.CreateIssueOptions{Title: "Plain"})
		assert.ErrorIs(t, err, domain.ErrIssueNotCreated)
	})
}
