package validator_test

import (
	"testing"

	"github.com/aretw0/fabula/internal/validator"
	"github.com/aretw0/fabula/pkg/story"
	"github.com/stretchr/testify/assert"
)

func TestValidate_AllReachable(t *testing.T) {
	tree := story.New[string]()
	tree.SetRoot("1", "Start")
	tree.AddEdge("1", "2", "Left")
	tree.AddEdge("1", "3", "Right")
	tree.AddEdge("2", "4", "Meet")
	tree.AddEdge("3", "4", "Meet")

	report := validator.Validate(tree)
	assert.True(t, report.OK())
	assert.Equal(t, 4, report.Reachable)
	assert.Empty(t, report.Unreachable)
}

func TestValidate_UnreachableNodes(t *testing.T) {
	tree := story.New[string]()
	tree.SetRoot("1", "Start")
	tree.AddEdge("1", "2", "Onward")
	tree.AddEdge("10", "11", "Orphan island")

	report := validator.Validate(tree)
	assert.False(t, report.OK())
	assert.True(t, report.HasRoot)
	assert.Equal(t, []string{"10", "11"}, report.Unreachable)
}

func TestValidate_NoRoot(t *testing.T) {
	tree := story.New[string]()
	tree.AddEdge("1", "2", "Nowhere to start")

	report := validator.Validate(tree)
	assert.False(t, report.OK())
	assert.False(t, report.HasRoot)
	assert.Equal(t, []string{"1", "2"}, report.Unreachable)
}

func TestValidate_CycleTerminates(t *testing.T) {
	tree := story.New[string]()
	tree.SetRoot("1", "Hall")
	tree.AddEdge("1", "2", "Door")
	tree.AddEdge("2", "1", "Back")

	report := validator.Validate(tree)
	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Reachable)
}
