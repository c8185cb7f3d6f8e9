package agent

import (
	"context"
	"fmt"
	"time"
)

// MaxPageDescription caps the description paragraph published to the
// page-hosting service.
const MaxPageDescription = 2000

// CourseClient is the course-listing collaborator.
type CourseClient interface {
	ListCourses(ctx context.Context) ([]Course, error)
	ListAssignments(ctx context.Context, courseID int64) ([]Assignment, error)
	// GetAssignment returns nil when the assignment does not exist.
	GetAssignment(ctx context.Context, courseID, assignmentID int64) (*Assignment, error)
}

// RepoPublisher is the repository-hosting collaborator.
type RepoPublisher interface {
	// CreateRepository returns nil on failure with an error describing why.
	CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*Repository, error)
	CreateFile(ctx context.Context, owner, repo, path, content, message, branch string) error
}

// PagePublisher is the page-hosting collaborator.
type PagePublisher interface {
	// Configured reports whether the destination credentials are present,
	// wrapping ErrConfigIncomplete when they are not.
	Configured() error
	CreatePage(ctx context.Context, page Page) (*PageRef, error)
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	owner    string
	branch   string
	private  bool
	keywords Keywords
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithOwner sets the repository owner (organization or username) used when
// the created repository record does not carry one.
func WithOwner(owner string) Option {
	return func(s *Service) { s.cfg.owner = owner }
}

// WithBranch sets the branch files are committed to. Default "main".
func WithBranch(branch string) Option {
	return func(s *Service) { s.cfg.branch = branch }
}

// WithPrivateRepos makes created repositories private.
func WithPrivateRepos(private bool) Option {
	return func(s *Service) { s.cfg.private = private }
}

// WithKeywords replaces the classification keyword sets.
func WithKeywords(kw Keywords) Option {
	return func(s *Service) { s.cfg.keywords = kw }
}

// WithClock injects the clock used for "next upcoming" selection. Tests
// inject a fixed time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.cfg.now = now }
}

// Service orchestrates the fetch, classify, generate, publish pipeline.
// Each run is independent; the Service holds no per-run state.
type Service struct {
	cfg     serviceConfig
	courses CourseClient
	repos   RepoPublisher
	pages   PagePublisher
}

// NewService creates a Service with default configuration.
func NewService(courses CourseClient, repos RepoPublisher, pages PagePublisher, opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			branch:   "main",
			keywords: DefaultKeywords(),
			now:      time.Now,
		},
		courses: courses,
		repos:   repos,
		pages:   pages,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCourses returns the courses available to the configured user.
func (s *Service) ListCourses(ctx context.Context) ([]Course, error) {
	return s.courses.ListCourses(ctx)
}

// ListAssignments returns all assignments for a course.
func (s *Service) ListAssignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	if courseID == 0 {
		return nil, ErrMissingCourse
	}
	return s.courses.ListAssignments(ctx, courseID)
}

// CreateInput carries the caller's intent for one pipeline run.
type CreateInput struct {
	CourseID     int64
	AssignmentID int64  // 0 selects the next upcoming assignment
	Language     string // starter-code language selector
	Type         string // "coding" or "writing"; empty runs the classifier
}

// Result is returned on a completed run. For the coding branch the
// repository reference is retained even when some file uploads failed;
// FailedFiles carries those paths.
type Result struct {
	Destination AssignmentType
	Assignment  Assignment
	Repository  *Repository
	Page        *PageRef
	Files       []string
	FailedFiles []string
}

// CreateArtifact runs the full pipeline: fetch one assignment, classify it,
// then scaffold a repository (coding) or publish a page (writing).
func (s *Service) CreateArtifact(ctx context.Context, in CreateInput) (*Result, error) {
	if in.CourseID == 0 {
		return nil, ErrMissingCourse
	}

	assignment, err := s.FetchAssignment(ctx, in.CourseID, in.AssignmentID)
	if err != nil {
		return nil, err
	}

	kind, err := s.classify(assignment, in.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case TypeWriting:
		return s.publishPage(ctx, assignment)
	default:
		return s.publishRepository(ctx, assignment, in.Language)
	}
}

// InferAssignmentType exposes classification with the service's configured
// keyword sets, for callers that surface the inferred type before running.
func (s *Service) InferAssignmentType(a Assignment) AssignmentType {
	return ScoreType(a.Name, a.Description, s.cfg.keywords)
}

// FetchAssignment obtains one assignment record: by direct lookup when
// assignmentID is non-zero, else by next-upcoming selection with a
// most-recently-created fallback. Exposed so callers can surface the
// record (and its inferred type) before committing to a destination.
func (s *Service) FetchAssignment(ctx context.Context, courseID, assignmentID int64) (Assignment, error) {
	if assignmentID != 0 {
		a, err := s.courses.GetAssignment(ctx, courseID, assignmentID)
		if err != nil {
			return Assignment{}, fmt.Errorf("fetching assignment %d: %w", assignmentID, err)
		}
		if a == nil {
			return Assignment{}, fmt.Errorf("%w: assignment %d in course %d", ErrAssignmentNotFound, assignmentID, courseID)
		}
		return *a, nil
	}

	assignments, err := s.courses.ListAssignments(ctx, courseID)
	if err != nil {
		return Assignment{}, fmt.Errorf("listing assignments for course %d: %w", courseID, err)
	}
	selected, err := selectAssignment(assignments, s.cfg.now())
	if err != nil {
		return Assignment{}, fmt.Errorf("%w %d", err, courseID)
	}
	return selected, nil
}

func (s *Service) classify(a Assignment, override string) (AssignmentType, error) {
	if override != "" {
		return ParseAssignmentType(override)
	}
	return s.InferAssignmentType(a), nil
}

func (s *Service) publishRepository(ctx context.Context, a Assignment, language string) (*Result, error) {
	files, err := GenerateStarterFiles(StarterInput{
		Name:                a.Name,
		DescriptionMarkdown: HTMLToMarkdown(a.Description),
		RawDescription:      a.Description,
		DueDate:             a.DueAt,
		Language:            language,
	})
	if err != nil {
		return nil, err
	}

	slug := NormalizeSlug(a.Name)
	description := fmt.Sprintf("%s - Due: %s", a.Name, a.DueDisplay())
	repo, err := s.repos.CreateRepository(ctx, slug, description, s.cfg.private, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCreation, err)
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: repository %q", ErrRemoteCreation, slug)
	}

	owner := repo.Owner
	if owner == "" {
		owner = s.cfg.owner
	}

	// File uploads fail soft: the created repository reference is retained
	// and failed paths are reported instead of discarding the run.
	result := &Result{
		Destination: TypeCoding,
		Assignment:  a,
		Repository:  repo,
	}
	for _, f := range files.Files() {
		message := "Add " + f.Path
		if err := s.repos.CreateFile(ctx, owner, repo.Name, f.Path, f.Content, message, s.cfg.branch); err != nil {
			result.FailedFiles = append(result.FailedFiles, f.Path)
			continue
		}
		result.Files = append(result.Files, f.Path)
	}
	return result, nil
}

func (s *Service) publishPage(ctx context.Context, a Assignment) (*Result, error) {
	if err := s.pages.Configured(); err != nil {
		return nil, err
	}

	page := Page{
		Title:       a.Name,
		DueDate:     a.DueDisplay(),
		Description: Truncate(HTMLToMarkdown(a.Description), MaxPageDescription),
	}
	ref, err := s.pages.CreatePage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCreation, err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: page %q", ErrRemoteCreation, a.Name)
	}

	return &Result{
		Destination: TypeWriting,
		Assignment:  a,
		Page:        ref,
	}, nil
}
