package redmine

import "context"

// IssueRelationType names the kind of a relation between two issues.
type IssueRelationType string

// Issue relation types.
const (
	IssueRelationRelates    IssueRelationType = "relates"
	IssueRelationDuplicates IssueRelationType = "duplicates"
	IssueRelationDuplicated IssueRelationType = "duplicated"
	IssueRelationBlocks     IssueRelationType = "blocks"
	IssueRelationBlocked    IssueRelationType = "blocked"
	IssueRelationPrecedes   IssueRelationType = "precedes"
	IssueRelationFollows    IssueRelationType = "follows"
	IssueRelationCopiedTo   IssueRelationType = "copied_to"
	IssueRelationCopiedFrom IssueRelationType = "copied_from"
)

// IssueRelation represents a relation between two issues.
type IssueRelation struct {
	ID           uint64            `json:"id"              yaml:"id"`
	IssueID      uint64            `json:"issue_id"        yaml:"issue_id"`
	IssueToID    uint64            `json:"issue_to_id"     yaml:"issue_to_id"`
	RelationType IssueRelationType `json:"relation_type"   yaml:"relation_type"`
	// Delay only applies to precedes/follows relations.
	Delay *int64 `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// IssueRelationCreateRequest represents a request to relate an issue to
// another.
type IssueRelationCreateRequest struct {
	IssueToID    uint64            `json:"issue_to_id"     yaml:"issue_to_id"`
	RelationType IssueRelationType `json:"relation_type"   yaml:"relation_type"`
	Delay        *int64            `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// IssueRelationsClient provides access to the relations of an issue. The
// relation list is not paginated by the service.
type IssueRelationsClient interface {
	List(ctx context.Context, issueID uint64) ([]IssueRelation, error)
	Get(ctx context.Context, id uint64) (*IssueRelation, error)
	Create(ctx context.Context, issueID uint64, req *IssueRelationCreateRequest) (*IssueRelation, error)
	Delete(ctx context.Context, id uint64) error
}
