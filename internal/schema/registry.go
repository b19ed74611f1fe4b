// Package schema defines the fixed target structure that normalized resume
// records are projected onto: ten ordered field groups, each with ordered,
// labeled field descriptors. The registry is immutable after construction
// and is passed to consumers by reference.
package schema

import "sort"

// FieldType describes how a field value should be rendered.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldText   FieldType = "text"
	FieldArray  FieldType = "array"
)

// Field describes a single field within a group.
type Field struct {
	Key      string    `json:"key"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}

// Group is a named, ordered cluster of related fields with display metadata.
type Group struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Order       int     `json:"order"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Group keys.
const (
	GroupBasicInfo      = "basic_info"
	GroupEducation      = "education"
	GroupWorkExperience = "work_experience"
	GroupProjects       = "project_experience"
	GroupSkills         = "skills"
	GroupLanguageSkills = "language_skills"
	GroupCertificates   = "certificates"
	GroupTraining       = "training"
	GroupSocialPractice = "social_practice"
	GroupSelfEvaluation = "self_evaluation"
)

// Registry is the read-only lookup for field groups. All accessors are total
// and return entries sorted ascending by their order attribute.
type Registry struct {
	groups []Group
	byKey  map[string]int
}

// NewRegistry constructs the registry with the built-in field structure.
func NewRegistry() *Registry {
	groups := builtinGroups()

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	byKey := make(map[string]int, len(groups))
	for i := range groups {
		fields := groups[i].Fields
		sort.SliceStable(fields, func(a, b int) bool { return fields[a].Order < fields[b].Order })
		byKey[groups[i].Key] = i
	}

	return &Registry{groups: groups, byKey: byKey}
}

// Groups returns all field groups in display order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// GroupFields returns the field descriptors of one group in display order.
// The second return value reports whether the group exists.
func (r *Registry) GroupFields(key string) ([]Field, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	out := make([]Field, len(r.groups[i].Fields))
	copy(out, r.groups[i].Fields)
	return out, true
}

// Group returns one group with its fields, in display order.
func (r *Registry) Group(key string) (Group, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Group{}, false
	}
	return r.groups[i], true
}

func builtinGroups() []Group {
	return []Group{
		{
			Key: GroupBasicInfo, Name: "基本信息", Icon: "👤", Order: 1,
			Description: "个人基本信息和联系方式",
			Fields: []Field{
				{Key: "name", Type: FieldString, Label: "姓名", Required: true, Order: 1},
				{Key: "gender", Type: FieldString, Label: "性别", Order: 2},
				{Key: "age", Type: FieldNumber, Label: "年龄", Order: 3},
				{Key: "birthday", Type: FieldString, Label: "出生日期", Order: 4},
				{Key: "mobile", Type: FieldString, Label: "手机号码", Order: 5},
				{Key: "email", Type: FieldString, Label: "邮箱", Order: 6},
				{Key: "living_address", Type: FieldString, Label: "居住地址", Order: 7},
				{Key: "hometown_address", Type: FieldString, Label: "籍贯地址", Order: 8},
				{Key: "hukou_address", Type: FieldString, Label: "户口地址", Order: 9},
				{Key: "city", Type: FieldString, Label: "所在城市", Order: 10},
				{Key: "race", Type: FieldString, Label: "民族", Order: 11},
				{Key: "surname", Type: FieldString, Label: "姓氏", Order: 12},
				{Key: "workExpYear", Type: FieldString, Label: "工作年限", Order: 13},
				{Key: "github", Type: FieldString, Label: "GitHub", Order: 14},
				{Key: "zhihu", Type: FieldString, Label: "知乎", Order: 15},
				{Key: "wechat", Type: FieldString, Label: "微信", Order: 16},
				{Key: "qq", Type: FieldString, Label: "QQ", Order: 17},
				{Key: "linkedin", Type: FieldString, Label: "LinkedIn", Order: 18},
				{Key: "blog", Type: FieldString, Label: "个人博客", Order: 19},
				{Key: "website", Type: FieldString, Label: "个人网站", Order: 20},
				{Key: "avatar", Type: FieldString, Label: "头像", Order: 21},
				{Key: "expect_job", Type: FieldString, Label: "期望职位", Order: 22},
				{Key: "expect_salary", Type: FieldString, Label: "期望薪资", Order: 23},
				{Key: "expect_city", Type: FieldString, Label: "期望城市", Order: 24},
				{Key: "expect_industry", Type: FieldString, Label: "期望行业", Order: 25},
				{Key: "resume_name", Type: FieldString, Label: "简历名称", Order: 26},
				{Key: "resume_update_time", Type: FieldString, Label: "简历更新时间", Order: 27},
				{Key: "resume_text", Type: FieldText, Label: "简历文本内容", Order: 28},
			},
		},
		{
			Key: GroupEducation, Name: "教育经历", Icon: "🎓", Order: 2,
			Description: "学历教育背景",
			Fields: []Field{
				{Key: "college", Type: FieldString, Label: "学校名称", Order: 1},
				{Key: "major", Type: FieldString, Label: "专业", Order: 2},
				{Key: "education", Type: FieldString, Label: "学历", Order: 3},
				{Key: "degree", Type: FieldString, Label: "学位", Order: 4},
				{Key: "college_type", Type: FieldString, Label: "学校类型", Order: 5},
				{Key: "college_rank", Type: FieldString, Label: "学校排名", Order: 6},
				{Key: "grad_time", Type: FieldString, Label: "毕业时间", Order: 7},
				{Key: "education_start_time", Type: FieldString, Label: "入学时间", Order: 8},
				{Key: "education_end_time", Type: FieldString, Label: "毕业时间", Order: 9},
				{Key: "gpa", Type: FieldString, Label: "GPA", Order: 10},
				{Key: "course", Type: FieldText, Label: "主修课程", Order: 11},
				{Key: "education_desc", Type: FieldText, Label: "教育经历描述", Order: 12},
			},
		},
		{
			Key: GroupWorkExperience, Name: "工作经历", Icon: "🏢", Order: 3,
			Description: "工作及实习经历",
			Fields: []Field{
				{Key: "company_name", Type: FieldString, Label: "公司名称", Order: 1},
				{Key: "department_name", Type: FieldString, Label: "部门名称", Order: 2},
				{Key: "job_position", Type: FieldString, Label: "职位", Order: 3},
				{Key: "work_time", Type: FieldArray, Label: "工作时间", Order: 4},
				{Key: "work_start_time", Type: FieldString, Label: "开始时间", Order: 5},
				{Key: "work_end_time", Type: FieldString, Label: "结束时间", Order: 6},
				{Key: "work_desc", Type: FieldText, Label: "工作描述", Order: 7},
				{Key: "salary", Type: FieldString, Label: "薪资", Order: 8},
				{Key: "work_type", Type: FieldString, Label: "工作类型", Order: 9},
				{Key: "industry", Type: FieldString, Label: "行业", Order: 10},
				{Key: "company_size", Type: FieldString, Label: "公司规模", Order: 11},
				{Key: "company_nature", Type: FieldString, Label: "公司性质", Order: 12},
				{Key: "report_to", Type: FieldString, Label: "汇报对象", Order: 13},
				{Key: "subordinates", Type: FieldString, Label: "下属人数", Order: 14},
				{Key: "achievement", Type: FieldText, Label: "工作成就", Order: 15},
			},
		},
		{
			Key: GroupProjects, Name: "项目经历", Icon: "📋", Order: 4,
			Description: "项目经验",
			Fields: []Field{
				{Key: "project_name", Type: FieldString, Label: "项目名称", Order: 1},
				{Key: "project_role", Type: FieldString, Label: "项目角色", Order: 2},
				{Key: "project_time", Type: FieldString, Label: "项目时间", Order: 3},
				{Key: "project_start_time", Type: FieldString, Label: "开始时间", Order: 4},
				{Key: "project_end_time", Type: FieldString, Label: "结束时间", Order: 5},
				{Key: "project_desc", Type: FieldText, Label: "项目描述", Order: 6},
				{Key: "project_content", Type: FieldText, Label: "项目内容", Order: 7},
				{Key: "project_technology", Type: FieldText, Label: "项目技术", Order: 8},
				{Key: "project_result", Type: FieldText, Label: "项目成果", Order: 9},
				{Key: "project_scale", Type: FieldString, Label: "项目规模", Order: 10},
				{Key: "project_budget", Type: FieldString, Label: "项目预算", Order: 11},
				{Key: "project_team_size", Type: FieldString, Label: "团队规模", Order: 12},
			},
		},
		{
			Key: GroupSkills, Name: "技能列表", Icon: "💻", Order: 5,
			Description: "专业技能",
			Fields: []Field{
				{Key: "skill_name", Type: FieldString, Label: "技能名称", Order: 1},
				{Key: "skill_level", Type: FieldString, Label: "技能等级", Order: 2},
				{Key: "skill_desc", Type: FieldText, Label: "技能描述", Order: 3},
				{Key: "skill_years", Type: FieldString, Label: "技能年限", Order: 4},
				{Key: "skill_category", Type: FieldString, Label: "技能类别", Order: 5},
			},
		},
		{
			Key: GroupLanguageSkills, Name: "语言技能", Icon: "🌍", Order: 6,
			Description: "语言能力",
			Fields: []Field{
				{Key: "language_name", Type: FieldString, Label: "语言名称", Order: 1},
				{Key: "language_level", Type: FieldString, Label: "语言等级", Order: 2},
				{Key: "language_certificate", Type: FieldString, Label: "语言证书", Order: 3},
				{Key: "language_score", Type: FieldString, Label: "语言分数", Order: 4},
			},
		},
		{
			Key: GroupCertificates, Name: "证书奖项", Icon: "🏆", Order: 7,
			Description: "证书和获奖情况",
			Fields: []Field{
				{Key: "award_info", Type: FieldString, Label: "证书/奖项名称", Order: 1},
				{Key: "award_time", Type: FieldString, Label: "获得时间", Order: 2},
				{Key: "award_desc", Type: FieldText, Label: "证书/奖项描述", Order: 3},
				{Key: "award_level", Type: FieldString, Label: "证书/奖项级别", Order: 4},
				{Key: "award_issuer", Type: FieldString, Label: "颁发机构", Order: 5},
				{Key: "certificate_type", Type: FieldString, Label: "证书类型", Order: 6},
			},
		},
		{
			Key: GroupTraining, Name: "培训经历", Icon: "📚", Order: 8,
			Description: "培训学习经历",
			Fields: []Field{
				{Key: "training_name", Type: FieldString, Label: "培训名称", Order: 1},
				{Key: "training_time", Type: FieldString, Label: "培训时间", Order: 2},
				{Key: "training_desc", Type: FieldText, Label: "培训描述", Order: 3},
				{Key: "training_institution", Type: FieldString, Label: "培训机构", Order: 4},
				{Key: "training_certificate", Type: FieldString, Label: "培训证书", Order: 5},
				{Key: "training_duration", Type: FieldString, Label: "培训时长", Order: 6},
			},
		},
		{
			Key: GroupSocialPractice, Name: "社会实践", Icon: "🤝", Order: 9,
			Description: "社会及学校实践",
			Fields: []Field{
				{Key: "practice_name", Type: FieldString, Label: "实践名称", Order: 1},
				{Key: "practice_time", Type: FieldString, Label: "实践时间", Order: 2},
				{Key: "practice_desc", Type: FieldText, Label: "实践描述", Order: 3},
				{Key: "practice_role", Type: FieldString, Label: "实践角色", Order: 4},
				{Key: "practice_organization", Type: FieldString, Label: "实践组织", Order: 5},
			},
		},
		{
			Key: GroupSelfEvaluation, Name: "个人评价", Icon: "📝", Order: 10,
			Description: "个人评价和介绍",
			Fields: []Field{
				{Key: "aboutme_desc", Type: FieldText, Label: "个人评价", Order: 1},
				{Key: "self_introduction", Type: FieldText, Label: "自我介绍", Order: 2},
				{Key: "hobby", Type: FieldText, Label: "兴趣爱好", Order: 3},
				{Key: "strength", Type: FieldText, Label: "个人优势", Order: 4},
				{Key: "weakness", Type: FieldText, Label: "个人劣势", Order: 5},
				{Key: "career_goal", Type: FieldText, Label: "职业目标", Order: 6},
			},
		},
	}
}
