package content

import (
	"encoding/json"
	"time"
)

// Status is the publication state shared by skills, modules, lessons and quizzes.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Toggled flips between draft and published. Archived content is published again.
func (s Status) Toggled() Status {
	if s == StatusPublished {
		return StatusDraft
	}
	return StatusPublished
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type ContentType string

const (
	ContentTypeText        ContentType = "text"
	ContentTypeVideo       ContentType = "video"
	ContentTypeInteractive ContentType = "interactive"
	ContentTypeMixed       ContentType = "mixed"
)

type CardType string

const (
	CardText        CardType = "text"
	CardImage       CardType = "image"
	CardVideo       CardType = "video"
	CardGIF         CardType = "gif"
	CardAudio       CardType = "audio"
	CardQuiz        CardType = "quiz"
	CardInteractive CardType = "interactive"
)

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
)

type ClientType string

const (
	ClientBank        ClientType = "bank"
	ClientCreditUnion ClientType = "credit_union"
	ClientSavingsLoan ClientType = "savings_loan"
	ClientInsurance   ClientType = "insurance"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientSetup    ClientStatus = "setup"
	ClientPaused   ClientStatus = "paused"
	ClientInactive ClientStatus = "inactive"
)

type ClientBranding struct {
	PrimaryColor string `json:"primary_color" yaml:"primary_color" validate:"omitempty,hexcolor"`
	AccentColor  string `json:"accent_color" yaml:"accent_color" validate:"omitempty,hexcolor"`
	LogoURL      string `json:"logo_url,omitempty" yaml:"logo_url,omitempty" validate:"omitempty,url"`
	FontFamily   string `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	CustomCSS    string `json:"custom_css,omitempty" yaml:"custom_css,omitempty"`
}

// Client is a financial institution embedding the content. Clients have no children.
type Client struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Type         ClientType     `json:"type" yaml:"type"`
	Status       ClientStatus   `json:"status" yaml:"status"`
	ContactEmail string         `json:"contact_email" yaml:"contact_email"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	Branding     ClientBranding `json:"branding" yaml:"branding"`
	UserID       string         `json:"user_id" yaml:"user_id"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"` // UTC
	UpdatedAt    time.Time      `json:"updated_at" yaml:"updated_at"` // UTC
}

type Skill struct {
	ID                string     `json:"id" yaml:"id"`
	Title             string     `json:"title" yaml:"title"`
	Description       string     `json:"description" yaml:"description"`
	Difficulty        Difficulty `json:"difficulty" yaml:"difficulty"`
	EstimatedDuration int        `json:"estimated_duration" yaml:"estimated_duration"` // minutes
	OrderIndex        int        `json:"order_index" yaml:"order_index"`
	Status            Status     `json:"status" yaml:"status"`
	UserID            string     `json:"user_id" yaml:"user_id"`
	CreatedAt         time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" yaml:"updated_at"`
}

type Module struct {
	ID                 string     `json:"id" yaml:"id"`
	SkillID            string     `json:"skill_id" yaml:"skill_id"`
	Title              string     `json:"title" yaml:"title"`
	Description        string     `json:"description" yaml:"description"`
	LearningObjectives []string   `json:"learning_objectives" yaml:"learning_objectives"`
	Difficulty         Difficulty `json:"difficulty" yaml:"difficulty"`
	EstimatedDuration  int        `json:"estimated_duration" yaml:"estimated_duration"`
	OrderIndex         int        `json:"order_index" yaml:"order_index"`
	Status             Status     `json:"status" yaml:"status"`
	UserID             string     `json:"user_id" yaml:"user_id"`
	CreatedAt          time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" yaml:"updated_at"`
}

type CardStyling struct {
	BackgroundColor string `json:"background_color" yaml:"background_color" validate:"omitempty,hexcolor"`
	TextColor       string `json:"text_color" yaml:"text_color" validate:"omitempty,hexcolor"`
	FontSize        string `json:"font_size" yaml:"font_size" validate:"omitempty,oneof=small medium large"`
	TextAlign       string `json:"text_align" yaml:"text_align" validate:"omitempty,oneof=left center right"`
	Padding         string `json:"padding" yaml:"padding" validate:"omitempty,oneof=small medium large"`
	BorderRadius    string `json:"border_radius" yaml:"border_radius" validate:"omitempty,oneof=none small medium large"`
	Shadow          string `json:"shadow" yaml:"shadow" validate:"omitempty,oneof=none small medium large"`
	FontFamily      string `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	CustomCSS       string `json:"custom_css,omitempty" yaml:"custom_css,omitempty"`
	Animation       string `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// LessonCard is owned by its Lesson and has no lifecycle of its own.
type LessonCard struct {
	ID         string      `json:"id" yaml:"id"`
	Type       CardType    `json:"type" yaml:"type"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	Content    string      `json:"content" yaml:"content"`
	MediaURL   string      `json:"media_url,omitempty" yaml:"media_url,omitempty"`
	OrderIndex int         `json:"order_index" yaml:"order_index"`
	Styling    CardStyling `json:"styling" yaml:"styling"`
}

type LessonAppearance struct {
	CircleColor     string `json:"circle_color" yaml:"circle_color"`
	CircleIcon      string `json:"circle_icon" yaml:"circle_icon"`
	TextFont        string `json:"text_font" yaml:"text_font"`
	TextColor       string `json:"text_color" yaml:"text_color"`
	ProgressColor   string `json:"progress_color" yaml:"progress_color"`
	BackgroundColor string `json:"background_color" yaml:"background_color"`
}

type Lesson struct {
	ID                string           `json:"id" yaml:"id"`
	ModuleID          string           `json:"module_id" yaml:"module_id"`
	Title             string           `json:"title" yaml:"title"`
	Content           string           `json:"content" yaml:"content"`
	ContentType       ContentType      `json:"content_type" yaml:"content_type"`
	EstimatedDuration int              `json:"estimated_duration" yaml:"estimated_duration"`
	OrderIndex        int              `json:"order_index" yaml:"order_index"`
	Status            Status           `json:"status" yaml:"status"`
	Cards             []LessonCard     `json:"cards" yaml:"cards"`
	Appearance        LessonAppearance `json:"appearance" yaml:"appearance"`
	UserID            string           `json:"user_id" yaml:"user_id"`
	CreatedAt         time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" yaml:"updated_at"`
}

type QuizOption struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"is_correct" yaml:"is_correct"`
}

// Answer holds the ids of the correct options of a question.
// On the wire a single answer is a plain string, several answers a list.
type Answer []string

func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*a = Answer{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*a = Answer(many)
	return nil
}

type QuizQuestion struct {
	ID            string       `json:"id" yaml:"id"`
	Question      string       `json:"question" yaml:"question"`
	Type          QuestionType `json:"type" yaml:"type"`
	Options       []QuizOption `json:"options" yaml:"options"`
	CorrectAnswer Answer       `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	OrderIndex    int          `json:"order_index" yaml:"order_index"`
}

type Quiz struct {
	ID           string         `json:"id" yaml:"id"`
	LessonID     string         `json:"lesson_id" yaml:"lesson_id"`
	Title        string         `json:"title" yaml:"title"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	Questions    []QuizQuestion `json:"questions" yaml:"questions"`
	PassingScore int            `json:"passing_score" yaml:"passing_score"` // percentage
	MaxAttempts  int            `json:"max_attempts" yaml:"max_attempts"`
	Status       Status         `json:"status" yaml:"status"`
	UserID       string         `json:"user_id" yaml:"user_id"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" yaml:"updated_at"`
}

// Snapshot is the whole content state, used for import/export.
type Snapshot struct {
	Clients    []Client   `json:"clients" yaml:"clients"`
	Skills     []Skill    `json:"skills" yaml:"skills"`
	Modules    []Module   `json:"modules" yaml:"modules"`
	Lessons    []Lesson   `json:"lessons" yaml:"lessons"`
	Quizzes    []Quiz     `json:"quizzes" yaml:"quizzes"`
	Activities []Activity `json:"activities" yaml:"activities"`
}
