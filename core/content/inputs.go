package content

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/genmo/core"
)

// NewClient contains information needed to onboard a Client.
type NewClient struct {
	Name         string         `json:"name" validate:"required,notblank"`
	Type         ClientType     `json:"type" validate:"required,oneof=bank credit_union savings_loan insurance"`
	Status       ClientStatus   `json:"status" validate:"omitempty,oneof=active setup paused inactive"`
	ContactEmail string         `json:"contact_email" validate:"required,email"`
	Description  string         `json:"description"`
	Branding     ClientBranding `json:"branding"`
}

func (nc *NewClient) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.ContactEmail = core.CleanString(nc.ContactEmail, true /* lower */)
	nc.Description = core.CleanString(nc.Description)
	if nc.Status == "" {
		nc.Status = ClientSetup
	}
	return validate.Struct(nc)
}

// UpdateClient defines what information may be provided to modify an existing Client.
// Nil fields are left untouched.
type UpdateClient struct {
	Name         *string         `json:"name" validate:"omitempty,notblank"`
	Type         *ClientType     `json:"type" validate:"omitempty,oneof=bank credit_union savings_loan insurance"`
	Status       *ClientStatus   `json:"status" validate:"omitempty,oneof=active setup paused inactive"`
	ContactEmail *string         `json:"contact_email" validate:"omitempty,email"`
	Description  *string         `json:"description"`
	Branding     *ClientBranding `json:"branding"`
}

func (uc *UpdateClient) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(uc.Name)
	core.CleanStringPtr(uc.Description)
	if uc.ContactEmail != nil {
		*uc.ContactEmail = core.CleanString(*uc.ContactEmail, true /* lower */)
	}
	return validate.Struct(uc)
}

func (uc UpdateClient) apply(c *Client) {
	setIf(&c.Name, uc.Name)
	setIf(&c.Type, uc.Type)
	setIf(&c.Status, uc.Status)
	setIf(&c.ContactEmail, uc.ContactEmail)
	setIf(&c.Description, uc.Description)
	setIf(&c.Branding, uc.Branding)
}

type NewSkill struct {
	Title             string     `json:"title" validate:"required,notblank"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedDuration int        `json:"estimated_duration" validate:"min=0"`
	OrderIndex        int        `json:"order_index" validate:"min=0"`
	Status            Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (ns *NewSkill) Validate(validate *validator.Validate) error {
	ns.Title = core.CleanString(ns.Title)
	ns.Description = core.CleanString(ns.Description)
	if ns.Status == "" {
		ns.Status = StatusDraft
	}
	return validate.Struct(ns)
}

type UpdateSkill struct {
	Title             *string     `json:"title" validate:"omitempty,notblank"`
	Description       *string     `json:"description"`
	Difficulty        *Difficulty `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedDuration *int        `json:"estimated_duration" validate:"omitempty,min=0"`
	OrderIndex        *int        `json:"order_index" validate:"omitempty,min=0"`
	Status            *Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (us *UpdateSkill) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(us.Title)
	core.CleanStringPtr(us.Description)
	return validate.Struct(us)
}

func (us UpdateSkill) apply(s *Skill) {
	setIf(&s.Title, us.Title)
	setIf(&s.Description, us.Description)
	setIf(&s.Difficulty, us.Difficulty)
	setIf(&s.EstimatedDuration, us.EstimatedDuration)
	setIf(&s.OrderIndex, us.OrderIndex)
	setIf(&s.Status, us.Status)
}

type NewModule struct {
	SkillID            string     `json:"skill_id" validate:"required,notblank"`
	Title              string     `json:"title" validate:"required,notblank"`
	Description        string     `json:"description"`
	LearningObjectives []string   `json:"learning_objectives"`
	Difficulty         Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedDuration  int        `json:"estimated_duration" validate:"min=0"`
	OrderIndex         int        `json:"order_index" validate:"min=0"`
	Status             Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (nm *NewModule) Validate(validate *validator.Validate) error {
	nm.SkillID = core.CleanString(nm.SkillID)
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	nm.LearningObjectives = core.CleanStrings(nm.LearningObjectives)
	if nm.Status == "" {
		nm.Status = StatusDraft
	}
	return validate.Struct(nm)
}

type UpdateModule struct {
	SkillID            *string     `json:"skill_id" validate:"omitempty,notblank"`
	Title              *string     `json:"title" validate:"omitempty,notblank"`
	Description        *string     `json:"description"`
	LearningObjectives []string    `json:"learning_objectives"`
	Difficulty         *Difficulty `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedDuration  *int        `json:"estimated_duration" validate:"omitempty,min=0"`
	OrderIndex         *int        `json:"order_index" validate:"omitempty,min=0"`
	Status             *Status     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (um *UpdateModule) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(um.SkillID)
	core.CleanStringPtr(um.Title)
	core.CleanStringPtr(um.Description)
	if um.LearningObjectives != nil {
		um.LearningObjectives = core.CleanStrings(um.LearningObjectives)
	}
	return validate.Struct(um)
}

func (um UpdateModule) apply(m *Module) {
	setIf(&m.SkillID, um.SkillID)
	setIf(&m.Title, um.Title)
	setIf(&m.Description, um.Description)
	if um.LearningObjectives != nil {
		m.LearningObjectives = append([]string{}, um.LearningObjectives...)
	}
	setIf(&m.Difficulty, um.Difficulty)
	setIf(&m.EstimatedDuration, um.EstimatedDuration)
	setIf(&m.OrderIndex, um.OrderIndex)
	setIf(&m.Status, um.Status)
}

type NewLesson struct {
	ModuleID          string            `json:"module_id" validate:"required,notblank"`
	Title             string            `json:"title" validate:"required,notblank"`
	Content           string            `json:"content"`
	ContentType       ContentType       `json:"content_type" validate:"omitempty,oneof=text video interactive mixed"`
	EstimatedDuration int               `json:"estimated_duration" validate:"min=0"`
	OrderIndex        int               `json:"order_index" validate:"min=0"`
	Status            Status            `json:"status" validate:"omitempty,oneof=draft published archived"`
	Cards             []LessonCard      `json:"cards"`
	Appearance        *LessonAppearance `json:"appearance"`
}

func (nl *NewLesson) Validate(validate *validator.Validate) error {
	nl.ModuleID = core.CleanString(nl.ModuleID)
	nl.Title = core.CleanString(nl.Title)
	if nl.ContentType == "" {
		nl.ContentType = ContentTypeText
	}
	if nl.Status == "" {
		nl.Status = StatusDraft
	}
	return validate.Struct(nl)
}

type UpdateLesson struct {
	ModuleID          *string           `json:"module_id" validate:"omitempty,notblank"`
	Title             *string           `json:"title" validate:"omitempty,notblank"`
	Content           *string           `json:"content"`
	ContentType       *ContentType      `json:"content_type" validate:"omitempty,oneof=text video interactive mixed"`
	EstimatedDuration *int              `json:"estimated_duration" validate:"omitempty,min=0"`
	OrderIndex        *int              `json:"order_index" validate:"omitempty,min=0"`
	Status            *Status           `json:"status" validate:"omitempty,oneof=draft published archived"`
	Cards             []LessonCard      `json:"cards"`
	Appearance        *LessonAppearance `json:"appearance"`
}

func (ul *UpdateLesson) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(ul.ModuleID)
	core.CleanStringPtr(ul.Title)
	return validate.Struct(ul)
}

func (ul UpdateLesson) apply(l *Lesson) {
	setIf(&l.ModuleID, ul.ModuleID)
	setIf(&l.Title, ul.Title)
	setIf(&l.Content, ul.Content)
	setIf(&l.ContentType, ul.ContentType)
	setIf(&l.EstimatedDuration, ul.EstimatedDuration)
	setIf(&l.OrderIndex, ul.OrderIndex)
	setIf(&l.Status, ul.Status)
	if ul.Cards != nil {
		l.Cards = append([]LessonCard{}, ul.Cards...)
	}
	setIf(&l.Appearance, ul.Appearance)
}

type NewQuiz struct {
	LessonID     string         `json:"lesson_id" validate:"required,notblank"`
	Title        string         `json:"title" validate:"required,notblank"`
	Description  string         `json:"description"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passing_score" validate:"min=0,max=100"`
	MaxAttempts  int            `json:"max_attempts" validate:"min=0"`
	Status       Status         `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (nq *NewQuiz) Validate(validate *validator.Validate) error {
	nq.LessonID = core.CleanString(nq.LessonID)
	nq.Title = core.CleanString(nq.Title)
	nq.Description = core.CleanString(nq.Description)
	if nq.Status == "" {
		nq.Status = StatusDraft
	}
	return validate.Struct(nq)
}

type UpdateQuiz struct {
	LessonID     *string        `json:"lesson_id" validate:"omitempty,notblank"`
	Title        *string        `json:"title" validate:"omitempty,notblank"`
	Description  *string        `json:"description"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore *int           `json:"passing_score" validate:"omitempty,min=0,max=100"`
	MaxAttempts  *int           `json:"max_attempts" validate:"omitempty,min=0"`
	Status       *Status        `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (uq *UpdateQuiz) Validate(validate *validator.Validate) error {
	core.CleanStringPtr(uq.LessonID)
	core.CleanStringPtr(uq.Title)
	core.CleanStringPtr(uq.Description)
	return validate.Struct(uq)
}

func (uq UpdateQuiz) apply(q *Quiz) {
	setIf(&q.LessonID, uq.LessonID)
	setIf(&q.Title, uq.Title)
	setIf(&q.Description, uq.Description)
	if uq.Questions != nil {
		q.Questions = Quiz{Questions: uq.Questions}.clone().Questions
	}
	setIf(&q.PassingScore, uq.PassingScore)
	setIf(&q.MaxAttempts, uq.MaxAttempts)
	setIf(&q.Status, uq.Status)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// NewCard contains information needed to add a card to a lesson.
type NewCard struct {
	Type     CardType     `json:"type" validate:"omitempty,oneof=text image video gif audio quiz interactive"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	MediaURL string       `json:"media_url"`
	Styling  *CardStyling `json:"styling"`
}

func (nc *NewCard) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.MediaURL = core.CleanString(nc.MediaURL)
	if nc.Type == "" {
		nc.Type = CardText
	}
	return validate.Struct(nc)
}

// Card builds the LessonCard under id. Missing styling is left empty for AddCard to default.
func (nc NewCard) Card(id string) LessonCard {
	card := LessonCard{
		ID:       id,
		Type:     nc.Type,
		Title:    nc.Title,
		Content:  nc.Content,
		MediaURL: nc.MediaURL,
	}
	if nc.Styling != nil {
		card.Styling = *nc.Styling
	}
	return card
}
