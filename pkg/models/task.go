package models

import "sort"

// Field names understood by the default task template.
const (
	FieldFolder                 = "folder"
	FieldFilename               = "filename"
	FieldTaskNumber             = "task_number"
	FieldUserStory              = "user_story"
	FieldObjective              = "objective"
	FieldComplexity             = "complexity"
	FieldEstimate               = "estimate"
	FieldDependencies           = "dependencies"
	FieldSprint                 = "sprint"
	FieldComponents             = "components"
	FieldIntegrations           = "integrations"
	FieldAcceptanceCriteria     = "acceptance_criteria"
	FieldUnitTests              = "unit_tests"
	FieldIntegrationTests       = "integration_tests"
	FieldAffectedFiles          = "affected_files"
	FieldImplementationExpected = "implementation_expected"
	FieldCodeExamples           = "code_examples"
	FieldHowToTest              = "how_to_test"
	FieldSuccessCriteria        = "success_criteria"
	FieldNextSteps              = "next_steps"
)

// RecordFields lists every field of a complete TaskRecord in document order.
var RecordFields = []string{
	FieldFolder,
	FieldFilename,
	FieldTaskNumber,
	FieldUserStory,
	FieldObjective,
	FieldComplexity,
	FieldEstimate,
	FieldDependencies,
	FieldSprint,
	FieldComponents,
	FieldIntegrations,
	FieldAcceptanceCriteria,
	FieldUnitTests,
	FieldIntegrationTests,
	FieldAffectedFiles,
	FieldImplementationExpected,
	FieldCodeExamples,
	FieldHowToTest,
	FieldSuccessCriteria,
	FieldNextSteps,
}

// TaskRecord is the field-value bundle used to render one documentation file.
// Values are opaque text; no cross-field validation is performed.
type TaskRecord map[string]string

// Folder returns the directory, relative to the base directory, the
// document is written to.
func (r TaskRecord) Folder() string { return r[FieldFolder] }

// Filename returns the document's file name inside Folder.
func (r TaskRecord) Filename() string { return r[FieldFilename] }

// TaskTable maps a task id to its record. It is built once by the caller
// and never mutated by the generator.
type TaskTable map[int]TaskRecord

// IDs returns the task ids in ascending order.
func (t TaskTable) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
