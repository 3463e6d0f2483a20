// Package directory resolves team-member and project IDs for display.
// The task store never consults it; tasks carry the IDs as opaque keys.
package directory

import (
	"sort"

	"github.com/fitz/taskboard/internal/models"
)

// Directory is a read-only lookup of members and projects.
type Directory struct {
	members  map[string]models.Member
	projects map[string]models.Project
}

// New builds a directory. Later entries win on duplicate IDs.
func New(members []models.Member, projects []models.Project) *Directory {
	d := &Directory{
		members:  make(map[string]models.Member, len(members)),
		projects: make(map[string]models.Project, len(projects)),
	}
	for _, m := range members {
		d.members[m.ID] = m
	}
	for _, p := range projects {
		d.projects[p.ID] = p
	}
	return d
}

// Member returns the member with id.
func (d *Directory) Member(id string) (models.Member, bool) {
	m, ok := d.members[id]
	return m, ok
}

// Project returns the project with id.
func (d *Directory) Project(id string) (models.Project, bool) {
	p, ok := d.projects[id]
	return p, ok
}

// MemberName returns the member's display name, or the raw id when unknown.
func (d *Directory) MemberName(id string) string {
	if m, ok := d.members[id]; ok {
		return m.Name
	}
	return id
}

// ProjectName returns the project's display name, or the raw id when unknown.
func (d *Directory) ProjectName(id string) string {
	if p, ok := d.projects[id]; ok {
		return p.Name
	}
	return id
}

// Members returns all members sorted by name.
func (d *Directory) Members() []models.Member {
	out := make([]models.Member, 0, len(d.members))
	for _, m := range d.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MembersWithRole returns the members holding role, sorted by name.
func (d *Directory) MembersWithRole(role models.Role) []models.Member {
	var out []models.Member
	for _, m := range d.Members() {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// Projects returns all projects sorted by name.
func (d *Directory) Projects() []models.Project {
	out := make([]models.Project, 0, len(d.projects))
	for _, p := range d.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
