package commands

import (
	"time"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Views flatten URIs to strings so json and yaml output stay readable.

type userView struct {
	Self        string   `json:"self"                   yaml:"self"`
	Name        string   `json:"name"                   yaml:"name"`
	DisplayName *string  `json:"displayName,omitempty"  yaml:"displayName,omitempty"`
	Email       *string  `json:"emailAddress,omitempty" yaml:"emailAddress,omitempty"`
	Active      *bool    `json:"active,omitempty"       yaml:"active,omitempty"`
	TimeZone    *string  `json:"timeZone,omitempty"     yaml:"timeZone,omitempty"`
	Groups      []string `json:"groups,omitempty"       yaml:"groups,omitempty"`
}

func newBasicUserView(user *jira.BasicUser) *userView {
	if user == nil {
		return nil
	}

	return &userView{Self: uriString(user.Self), Name: user.Name, DisplayName: user.DisplayName}
}

func newUserView(user *jira.User) *userView {
	view := newBasicUserView(&user.BasicUser)
	view.Email = user.EmailAddress
	view.Active = &user.Active
	view.TimeZone = user.TimeZone

	for _, group := range user.Groups.Items {
		view.Groups = append(view.Groups, group.Name)
	}

	return view
}

type fieldView struct {
	ID    string `json:"id"              yaml:"id"`
	Name  string `json:"name"            yaml:"name"`
	Type  string `json:"type"            yaml:"type"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

type linkView struct {
	Type      string `json:"type"      yaml:"type"`
	Direction string `json:"direction" yaml:"direction"`
	Target    string `json:"target"    yaml:"target"`
}

type issueView struct {
	Self        string      `json:"self"                  yaml:"self"`
	Key         string      `json:"key"                   yaml:"key"`
	ID          *int64      `json:"id,omitempty"          yaml:"id,omitempty"`
	Summary     string      `json:"summary"               yaml:"summary"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Project     string      `json:"project"               yaml:"project"`
	IssueType   string      `json:"issueType"             yaml:"issueType"`
	Status      string      `json:"status"                yaml:"status"`
	Priority    string      `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Resolution  string      `json:"resolution,omitempty"  yaml:"resolution,omitempty"`
	Reporter    *userView   `json:"reporter,omitempty"    yaml:"reporter,omitempty"`
	Assignee    *userView   `json:"assignee,omitempty"    yaml:"assignee,omitempty"`
	Created     time.Time   `json:"created"               yaml:"created"`
	Updated     time.Time   `json:"updated"               yaml:"updated"`
	Labels      []string    `json:"labels"                yaml:"labels"`
	Components  []string    `json:"components"            yaml:"components"`
	FixVersions []string    `json:"fixVersions,omitempty" yaml:"fixVersions,omitempty"`
	Comments    int         `json:"comments"              yaml:"comments"`
	Attachments int         `json:"attachments"           yaml:"attachments"`
	Worklogs    int         `json:"worklogs"              yaml:"worklogs"`
	Links       []linkView  `json:"links,omitempty"       yaml:"links,omitempty"`
	Fields      []fieldView `json:"fields,omitempty"      yaml:"fields,omitempty"`
}

func newIssueView(issue *jira.Issue) issueView {
	view := issueView{
		Self:        uriString(issue.Self),
		Key:         issue.Key,
		ID:          issue.ID,
		Summary:     issue.Summary,
		Description: issue.Description,
		Project:     issue.Project.Key,
		IssueType:   issue.IssueType.Name,
		Status:      issue.Status.Name,
		Reporter:    newBasicUserView(issue.Reporter),
		Assignee:    newBasicUserView(issue.Assignee),
		Created:     issue.Created,
		Updated:     issue.Updated,
		Labels:      issue.Labels,
		Comments:    issue.Comments.Size,
		Attachments: issue.Attachments.Size,
		Worklogs:    issue.Worklogs.Size,
	}

	if issue.Priority != nil {
		view.Priority = issue.Priority.Name
	}

	if issue.Resolution != nil {
		view.Resolution = issue.Resolution.Name
	}

	for _, component := range issue.Components {
		view.Components = append(view.Components, component.Name)
	}

	for _, version := range issue.FixVersions {
		view.FixVersions = append(view.FixVersions, version.Name)
	}

	for _, link := range issue.IssueLinks {
		view.Links = append(view.Links, linkView{
			Type:      link.Type.Description,
			Direction: string(link.Type.Direction),
			Target:    link.TargetIssueKey,
		})
	}

	for _, field := range issue.Fields {
		view.Fields = append(view.Fields, fieldView(field))
	}

	return view
}

type projectView struct {
	Self        string   `json:"self"                  yaml:"self"`
	Key         string   `json:"key"                   yaml:"key"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        *string  `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Lead        string   `json:"lead,omitempty"        yaml:"lead,omitempty"`
	Components  []string `json:"components,omitempty"  yaml:"components,omitempty"`
	Versions    []string `json:"versions,omitempty"    yaml:"versions,omitempty"`
	IssueTypes  []string `json:"issueTypes,omitempty"  yaml:"issueTypes,omitempty"`
}

func newBasicProjectView(project jira.BasicProject) projectView {
	return projectView{Self: uriString(project.Self), Key: project.Key, ID: project.ID, Name: project.Name}
}

func newProjectView(project *jira.Project) projectView {
	view := newBasicProjectView(project.BasicProject)
	view.Description = project.Description
	view.Lead = project.Lead.Name

	for _, component := range project.Components {
		view.Components = append(view.Components, component.Name)
	}

	for _, version := range project.Versions {
		view.Versions = append(view.Versions, version.Name)
	}

	for _, issueType := range project.IssueTypes {
		view.IssueTypes = append(view.IssueTypes, issueType.Name)
	}

	return view
}

type versionView struct {
	Self        string     `json:"self"                  yaml:"self"`
	ID          *int64     `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Archived    bool       `json:"archived"              yaml:"archived"`
	Released    bool       `json:"released"              yaml:"released"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
}

func newVersionView(version *jira.Version) versionView {
	return versionView{
		Self:        uriString(version.Self),
		ID:          version.ID,
		Name:        version.Name,
		Description: version.Description,
		Archived:    version.Archived,
		Released:    version.Released,
		ReleaseDate: version.ReleaseDate,
	}
}

type roleView struct {
	Self        string   `json:"self"                  yaml:"self"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Actors      []string `json:"actors"                yaml:"actors"`
}

func newRoleView(role *jira.ProjectRole) roleView {
	view := roleView{
		Self:        uriString(role.Self),
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Actors:      make([]string, 0, len(role.Actors)),
	}

	for _, actor := range role.Actors {
		view.Actors = append(view.Actors, actor.Name)
	}

	return view
}

type watchersView struct {
	IsWatching bool       `json:"isWatching" yaml:"isWatching"`
	WatchCount int        `json:"watchCount" yaml:"watchCount"`
	Watchers   []userView `json:"watchers"   yaml:"watchers"`
}

func newWatchersView(watchers *jira.Watchers) watchersView {
	view := watchersView{
		IsWatching: watchers.IsWatching,
		WatchCount: watchers.WatchCount,
		Watchers:   make([]userView, 0, len(watchers.WatcherList)),
	}

	for i := range watchers.WatcherList {
		view.Watchers = append(view.Watchers, *newBasicUserView(&watchers.WatcherList[i]))
	}

	return view
}

type serverInfoView struct {
	BaseURI        string     `json:"baseUrl"              yaml:"baseUrl"`
	Version        string     `json:"version"              yaml:"version"`
	VersionNumbers []int      `json:"versionNumbers"       yaml:"versionNumbers"`
	BuildNumber    int        `json:"buildNumber"          yaml:"buildNumber"`
	BuildDate      time.Time  `json:"buildDate"            yaml:"buildDate"`
	ServerTime     *time.Time `json:"serverTime,omitempty" yaml:"serverTime,omitempty"`
	ScmInfo        string     `json:"scmInfo"              yaml:"scmInfo"`
	ServerTitle    string     `json:"serverTitle"          yaml:"serverTitle"`
}

func newServerInfoView(info *jira.ServerInfo) serverInfoView {
	return serverInfoView{
		BaseURI:        uriString(info.BaseURI),
		Version:        info.Version,
		VersionNumbers: info.VersionNumbers,
		BuildNumber:    info.BuildNumber,
		BuildDate:      info.BuildDate,
		ServerTime:     info.ServerTime,
		ScmInfo:        info.ScmInfo,
		ServerTitle:    info.ServerTitle,
	}
}
