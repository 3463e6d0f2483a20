package tools

import (
	"context"
	"fmt"

	"github.com/fitz/taskboard/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListMembersInput defines the input for the list_members tool.
type ListMembersInput struct {
	Role string `json:"role,omitempty" jsonschema:"Only list members with this role: admin, employee"`
}

// ProjectOutput is a project as listed by list_members.
type ProjectOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MemberOutput is a team member.
type MemberOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// ListMembersOutput defines the output for the list_members tool.
type ListMembersOutput struct {
	Members  []MemberOutput  `json:"members"`
	Projects []ProjectOutput `json:"projects"`
}

// ListMembersTool returns the tool definition for list_members.
func ListMembersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_members",
		Description: "List team members and projects. Use the IDs as the assignee and project of a task.",
	}
}

// HandleListMembers handles the list_members tool call.
func (h *Handler) HandleListMembers(ctx context.Context, req *mcp.CallToolRequest, input ListMembersInput) (*mcp.CallToolResult, ListMembersOutput, error) {
	h.Logger.Info("list_members", "role", input.Role)

	members := h.Directory.Members()
	if input.Role != "" {
		if !models.IsValidRole(input.Role) {
			return nil, ListMembersOutput{}, fmt.Errorf("invalid role: %s (must be one of: admin, employee)", input.Role)
		}
		members = h.Directory.MembersWithRole(models.Role(input.Role))
	}

	out := ListMembersOutput{
		Members:  make([]MemberOutput, 0, len(members)),
		Projects: []ProjectOutput{},
	}
	for _, m := range members {
		out.Members = append(out.Members, MemberOutput{ID: m.ID, Name: m.Name, Email: m.Email, Role: string(m.Role)})
	}
	for _, p := range h.Directory.Projects() {
		out.Projects = append(out.Projects, ProjectOutput{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return nil, out, nil
}
