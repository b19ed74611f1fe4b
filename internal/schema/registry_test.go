package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumehub/internal/schema"
)

func TestRegistryGroupsOrderedAndComplete(t *testing.T) {
	reg := schema.NewRegistry()
	groups := reg.Groups()

	assert.Len(t, groups, 10)
	for i, g := range groups {
		assert.Equal(t, i+1, g.Order, "group %s out of order", g.Key)
		assert.NotEmpty(t, g.Name)
		assert.NotEmpty(t, g.Icon)
		assert.NotEmpty(t, g.Description)
		assert.NotEmpty(t, g.Fields)
	}

	assert.Equal(t, schema.GroupBasicInfo, groups[0].Key)
	assert.Equal(t, schema.GroupSelfEvaluation, groups[9].Key)
}

func TestRegistryGroupFields(t *testing.T) {
	reg := schema.NewRegistry()

	fields, ok := reg.GroupFields(schema.GroupBasicInfo)
	assert.True(t, ok)
	assert.Len(t, fields, 28)
	assert.Equal(t, "name", fields[0].Key)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "resume_text", fields[27].Key)

	for i, f := range fields {
		assert.Equal(t, i+1, f.Order)
	}

	edu, ok := reg.GroupFields(schema.GroupEducation)
	assert.True(t, ok)
	assert.Len(t, edu, 12)
	assert.Equal(t, "college", edu[0].Key)

	_, ok = reg.GroupFields("no_such_group")
	assert.False(t, ok)
}

func TestRegistryFieldCounts(t *testing.T) {
	reg := schema.NewRegistry()

	want := map[string]int{
		schema.GroupBasicInfo:      28,
		schema.GroupEducation:      12,
		schema.GroupWorkExperience: 15,
		schema.GroupProjects:       12,
		schema.GroupSkills:         5,
		schema.GroupLanguageSkills: 4,
		schema.GroupCertificates:   6,
		schema.GroupTraining:       6,
		schema.GroupSocialPractice: 5,
		schema.GroupSelfEvaluation: 6,
	}
	for key, n := range want {
		fields, ok := reg.GroupFields(key)
		assert.True(t, ok, key)
		assert.Len(t, fields, n, key)
	}
}

func TestRegistryAccessorsReturnCopies(t *testing.T) {
	reg := schema.NewRegistry()

	groups := reg.Groups()
	groups[0].Key = "mutated"

	again := reg.Groups()
	assert.Equal(t, schema.GroupBasicInfo, again[0].Key)

	fields, _ := reg.GroupFields(schema.GroupSkills)
	fields[0].Key = "mutated"
	fields2, _ := reg.GroupFields(schema.GroupSkills)
	assert.Equal(t, "skill_name", fields2[0].Key)
}
