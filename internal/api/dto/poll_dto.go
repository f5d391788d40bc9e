package dto

type CreatePollDTO struct {
	Question string   `json:"question" validate:"required,min=1,max=500"`
	Options  []string `json:"options" validate:"required,min=2,max=10,dive,min=1,max=255"`
}

type PollVoteDTO struct {
	OptionID uint64 `json:"option_id" validate:"required"`
}

type PollOptionDTO struct {
	ID    uint64 `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type PollDTO struct {
	ID        uint64           `json:"id"`
	Question  string           `json:"question"`
	Options   []*PollOptionDTO `json:"options"`
	CreatedAt string           `json:"created_at"`
}
