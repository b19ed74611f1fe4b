// Package mapper projects raw third-party parser output onto the fixed
// field-group structure defined by the schema registry. The parser's schema
// is not contractually stable: fields may arrive nested under a profile
// sub-object or at the top level, list groups may use current or legacy key
// names, and unknown keys can appear at any time. Mapping reconciles all of
// those shapes without losing data.
package mapper

import (
	"log"

	"resumehub/internal/schema"
)

// Legacy list keys emitted by older parser versions. Each is consulted only
// when its primary counterpart is absent; the two are never merged.
const (
	legacyWorkKey  = "job_exp_objs"
	legacySkillKey = "skills_objs"
)

// listSource binds one output group to the raw keys it is read from.
type listSource struct {
	groupKey  string
	outKey    string
	rawKey    string
	legacyKey string
	// legacyRename maps a legacy item key to the canonical field key it
	// populates. Fields not listed are read under their canonical name.
	legacyRename map[string]string
}

var listSources = []listSource{
	{
		groupKey: schema.GroupWorkExperience, outKey: "work_experience",
		rawKey: "workExpList", legacyKey: legacyWorkKey,
		legacyRename: map[string]string{
			"company_name":    "job_cpy",
			"work_start_time": "start_date",
			"work_end_time":   "end_date",
			"work_desc":       "job_content",
		},
	},
	{groupKey: schema.GroupProjects, outKey: "project_experience", rawKey: "projectList"},
	{
		groupKey: schema.GroupSkills, outKey: "skills",
		rawKey: "skillList", legacyKey: legacySkillKey,
		legacyRename: map[string]string{
			"skill_name":  "skills_name",
			"skill_level": "skills_level",
			"skill_desc":  "skills_desc",
		},
	},
	{groupKey: schema.GroupLanguageSkills, outKey: "language_skills", rawKey: "languageList"},
	{groupKey: schema.GroupCertificates, outKey: "certificates", rawKey: "awardList"},
	{groupKey: schema.GroupTraining, outKey: "training", rawKey: "training"},
	{groupKey: schema.GroupSocialPractice, outKey: "social_practice", rawKey: "practiceList"},
}

// Mapper turns raw parse results into normalized records. It is stateless
// and safe for concurrent use.
type Mapper struct {
	reg *schema.Registry
}

// New returns a Mapper driven by the given registry.
func New(reg *schema.Registry) *Mapper {
	return &Mapper{reg: reg}
}

// MapToCustomStructure maps a raw parser result to the normalized record
// shape. It is total: missing fields default to empty strings or lists, and
// on any internal fault it logs and returns the raw input unmodified so the
// parse event is never lost.
func (m *Mapper) MapToCustomStructure(raw map[string]any) (out map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("mapper.MapToCustomStructure: recovered, returning raw input: %v", r)
			out = raw
		}
	}()

	out = make(map[string]any, len(raw)+16)
	consumed := map[string]bool{
		"profile": true, "aboutme": true, "educationList": true, "phone": true,
	}

	m.mapBasicInfo(raw, out, consumed)
	m.mapEducation(raw, out, consumed)

	for _, src := range listSources {
		m.mapListGroup(raw, out, consumed, src)
	}

	m.mapSelfEvaluation(raw, out)

	// Fallback bucket: retain every unrecognized top-level key verbatim.
	for k, v := range raw {
		if !consumed[k] {
			out["custom_"+k] = v
		}
	}
	return out
}

// mapBasicInfo runs the two-pass scalar precedence: values are first taken
// from the nested profile object, then every key is re-pulled from the top
// level. A present top-level value overrides the nested one; an absent one
// carries the nested value forward; neither present yields an empty string.
func (m *Mapper) mapBasicInfo(raw, out map[string]any, consumed map[string]bool) {
	fields, _ := m.reg.GroupFields(schema.GroupBasicInfo)

	profile, _ := raw["profile"].(map[string]any)
	for _, f := range fields {
		out[f.Key] = pick(profile[f.Key], nil)
	}

	for _, f := range fields {
		consumed[f.Key] = true
		top := raw[f.Key]
		if f.Key == "mobile" && !truthy(top) {
			top = raw["phone"]
		}
		out[f.Key] = pick(top, out[f.Key])
	}
}

// mapEducation flattens the first educationList entry into scalar slots,
// retains the full list verbatim, then applies the same top-level override
// pass used for basic info to each scalar slot.
func (m *Mapper) mapEducation(raw, out map[string]any, consumed map[string]bool) {
	fields, _ := m.reg.GroupFields(schema.GroupEducation)

	var first map[string]any
	if list, ok := raw["educationList"].([]any); ok {
		if len(list) > 0 {
			first, _ = list[0].(map[string]any)
		}
		out["educationList"] = list
	}

	for _, f := range fields {
		consumed[f.Key] = true
		out[f.Key] = pick(raw[f.Key], pick(first[f.Key], nil))
	}
}

// mapListGroup maps one list-valued group. The primary raw key wins
// entirely when present; the legacy key is a fallback, never a merge
// partner. Each item is projected onto the group's full field set with
// per-type defaults.
func (m *Mapper) mapListGroup(raw, out map[string]any, consumed map[string]bool, src listSource) {
	consumed[src.rawKey] = true
	if src.legacyKey != "" {
		consumed[src.legacyKey] = true
	}

	fields, _ := m.reg.GroupFields(src.groupKey)

	items, ok := raw[src.rawKey].([]any)
	rename := map[string]string(nil)
	if !ok && src.legacyKey != "" {
		items, ok = raw[src.legacyKey].([]any)
		if ok {
			rename = src.legacyRename
		}
	}

	mapped := make([]any, 0, len(items))
	for _, it := range items {
		item, _ := it.(map[string]any)
		entry := make(map[string]any, len(fields))
		for _, f := range fields {
			key := f.Key
			if alias, hasAlias := rename[f.Key]; hasAlias {
				key = alias
			}
			if v, present := item[key]; present {
				entry[f.Key] = v
			} else {
				entry[f.Key] = fieldDefault(f)
			}
		}
		mapped = append(mapped, entry)
	}
	out[src.outKey] = mapped
}

// mapSelfEvaluation reads only the nested aboutme object. Unlike basic
// info there is no top-level override pass for these keys.
func (m *Mapper) mapSelfEvaluation(raw, out map[string]any) {
	if aboutme, ok := raw["aboutme"].(map[string]any); ok {
		fields, _ := m.reg.GroupFields(schema.GroupSelfEvaluation)
		for _, f := range fields {
			if v, present := aboutme[f.Key]; present {
				out[f.Key] = v
			} else {
				out[f.Key] = ""
			}
		}
	}
}

func fieldDefault(f schema.Field) any {
	if f.Type == schema.FieldArray {
		return []any{}
	}
	return ""
}

// truthy mirrors the source-shape convention where empty strings, zeros and
// empty collections mean "absent".
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// pick returns top when it is truthy, otherwise prev when truthy,
// otherwise the empty string.
func pick(top, prev any) any {
	if truthy(top) {
		return top
	}
	if truthy(prev) {
		return prev
	}
	return ""
}
