package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCommentRequest struct {
	ProposalRef    string `json:"proposal_ref"`
	SectionName    string `json:"section_name"`
	SubsectionName string `json:"subsection_name"`
	Text           string `json:"comment_text"`
	Vote           string `json:"vote_status"`
}

type EditCommentRequest struct {
	Text *string `json:"comment_text,omitempty"`
	Vote *string `json:"vote_status,omitempty"`
}

type WholeProposalVoteRequest struct {
	ProposalRef string `json:"proposal_ref"`
	Text        string `json:"comment_text,omitempty"`
}

type CommentResponse struct {
	ID             int64  `json:"id"`
	UUID           string `json:"uuid"`
	ProposalID     int64  `json:"proposal_id"`
	TutorID        int64  `json:"tutor_id"`
	SectionName    string `json:"section_name"`
	SubsectionName string `json:"subsection_name"`
	Text           string `json:"comment_text"`
	Vote           string `json:"vote_status"`
	Scope          string `json:"scope"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type VoteOutcomeResponse struct {
	Comment        CommentResponse `json:"comment"`
	CommentWritten bool            `json:"comment_written"`
	StatusSynced   bool            `json:"status_synced"`
}

type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
}

type VoteStatsResponse struct {
	ProposalID       int64  `json:"proposal_id"`
	TotalVotes       int    `json:"total_votes"`
	AcceptedVotes    int    `json:"accepted_votes"`
	RejectedVotes    int    `json:"rejected_votes"`
	UpdateVotes      int    `json:"update_votes"`
	GeneralApproval  int    `json:"general_approval"`
	GeneralRejection int    `json:"general_rejection"`
	GeneralUpdate    int    `json:"general_update"`
	SectionApproval  int    `json:"section_approval"`
	SectionRejection int    `json:"section_rejection"`
	SectionUpdate    int    `json:"section_update"`
	CalculatedStatus string `json:"calculated_status"`
	EvaluationClosed bool   `json:"evaluation_closed"`
}

type FinalVoteResponse struct {
	HasVoted bool             `json:"has_voted"`
	Vote     string           `json:"vote_status,omitempty"`
	Comment  *CommentResponse `json:"comment,omitempty"`
}

type SyncStatusResponse struct {
	ProposalID int64 `json:"proposal_id"`
	Changed    bool  `json:"changed"`
}
