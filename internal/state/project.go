package state

import "github.com/atomicstack/dashboard-palette/internal/workspace"

type ProjectStore interface {
	Project() workspace.Project
	Organization() workspace.Organization
	DashboardURL() string
	Set(project workspace.Project, org workspace.Organization, dashboardURL string)
}

type projectStore struct {
	project      workspace.Project
	organization workspace.Organization
	dashboardURL string
}

func NewProjectStore() ProjectStore {
	return &projectStore{}
}

func (s *projectStore) Project() workspace.Project {
	return s.project
}

func (s *projectStore) Organization() workspace.Organization {
	return s.organization
}

func (s *projectStore) DashboardURL() string {
	return s.dashboardURL
}

func (s *projectStore) Set(project workspace.Project, org workspace.Organization, dashboardURL string) {
	s.project = project
	s.organization = org
	s.dashboardURL = dashboardURL
}
