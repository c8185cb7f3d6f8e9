package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeCourseClient serves canned course data.
type fakeCourseClient struct {
	courses     []Course
	assignments map[int64][]Assignment
	byID        map[int64]*Assignment
	listErr     error
	getErr      error
}

func (f *fakeCourseClient) ListCourses(ctx context.Context) ([]Course, error) {
	return f.courses, f.listErr
}

func (f *fakeCourseClient) ListAssignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.assignments[courseID], nil
}

func (f *fakeCourseClient) GetAssignment(ctx context.Context, courseID, assignmentID int64) (*Assignment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[assignmentID], nil
}

// fileUpload records one CreateFile call.
type fileUpload struct {
	owner   string
	repo    string
	path    string
	message string
	branch  string
}

// fakeRepoPublisher records repository and file creation calls.
type fakeRepoPublisher struct {
	repo      *Repository
	createErr error
	failPaths map[string]bool

	createdName string
	createdDesc string
	private     bool
	uploads     []fileUpload
}

func (f *fakeRepoPublisher) CreateRepository(ctx context.Context, name, description string, private, autoInit bool) (*Repository, error) {
	f.createdName = name
	f.createdDesc = description
	f.private = private
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.repo, nil
}

func (f *fakeRepoPublisher) CreateFile(ctx context.Context, owner, repo, path, content, message, branch string) error {
	if f.failPaths[path] {
		return fmt.Errorf("upload rejected: %s", path)
	}
	f.uploads = append(f.uploads, fileUpload{owner: owner, repo: repo, path: path, message: message, branch: branch})
	return nil
}

// fakePagePublisher records page creation calls.
type fakePagePublisher struct {
	configuredErr error
	ref           *PageRef
	createErr     error

	created bool
	got     Page
}

func (f *fakePagePublisher) Configured() error {
	return f.configuredErr
}

func (f *fakePagePublisher) CreatePage(ctx context.Context, page Page) (*PageRef, error) {
	f.created = true
	f.got = page
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.ref, nil
}

func codingAssignment() Assignment {
	return Assignment{
		ID:          7,
		Name:        "Graph Search Lab",
		Description: "<p>Write code and submit a GitHub repository.</p>",
		DueAt:       "2024-12-31T23:59:00Z",
	}
}

func writingAssignment() Assignment {
	return Assignment{
		ID:          8,
		Name:        "Critical Reflection Essay",
		Description: "<p>Write a 1200-word essay in APA format with citations.</p>",
		DueAt:       "2024-11-30T23:59:00Z",
	}
}

func newTestService(courses *fakeCourseClient, repos *fakeRepoPublisher, pages *fakePagePublisher, opts ...Option) *Service {
	if courses == nil {
		courses = &fakeCourseClient{}
	}
	if repos == nil {
		repos = &fakeRepoPublisher{repo: &Repository{Name: "repo", Owner: "octocat", URL: "https://example.com/repo"}}
	}
	if pages == nil {
		pages = &fakePagePublisher{ref: &PageRef{ID: "page-1", URL: "https://example.com/page-1"}}
	}
	return NewService(courses, repos, pages, opts...)
}

func TestCreateArtifactCodingBranch(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	repos := &fakeRepoPublisher{repo: &Repository{Name: "graph-search-lab", Owner: "octocat", URL: "https://example.com/graph-search-lab"}}
	svc := newTestService(courses, repos, nil)

	result, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID, Language: "python"})
	if err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}

	if result.Destination != TypeCoding {
		t.Errorf("Destination = %v, want %v", result.Destination, TypeCoding)
	}
	if result.Repository == nil || result.Repository.Name != "graph-search-lab" {
		t.Fatalf("Repository = %+v, want the created repository", result.Repository)
	}
	if len(result.FailedFiles) != 0 {
		t.Errorf("FailedFiles = %v, want none", result.FailedFiles)
	}

	if repos.createdName != "graph-search-lab" {
		t.Errorf("repository created as %q, want the slug", repos.createdName)
	}
	wantDesc := "Graph Search Lab - Due: 2024-12-31T23:59:00Z"
	if repos.createdDesc != wantDesc {
		t.Errorf("repository description = %q, want %q", repos.createdDesc, wantDesc)
	}

	if len(repos.uploads) == 0 {
		t.Fatal("no files were uploaded")
	}
	for _, up := range repos.uploads {
		if up.owner != "octocat" {
			t.Errorf("upload owner = %q, want %q", up.owner, "octocat")
		}
		if up.branch != "main" {
			t.Errorf("upload branch = %q, want %q", up.branch, "main")
		}
		if up.message != "Add "+up.path {
			t.Errorf("commit message = %q, want %q", up.message, "Add "+up.path)
		}
	}

	uploaded := make(map[string]bool, len(result.Files))
	for _, p := range result.Files {
		uploaded[p] = true
	}
	for _, want := range []string{"README.md", "ASSIGNMENT.md", "main.py"} {
		if !uploaded[want] {
			t.Errorf("uploaded files missing %q: %v", want, result.Files)
		}
	}
}

func TestCreateArtifactPartialUploadFailure(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	repos := &fakeRepoPublisher{
		repo:      &Repository{Name: "graph-search-lab", Owner: "octocat"},
		failPaths: map[string]bool{"main.py": true},
	}
	svc := newTestService(courses, repos, nil)

	result, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID, Language: "python"})
	if err != nil {
		t.Fatalf("CreateArtifact() error: %v, want partial failures reported in the result", err)
	}

	if result.Repository == nil {
		t.Fatal("Repository dropped on partial upload failure")
	}
	if len(result.FailedFiles) != 1 || result.FailedFiles[0] != "main.py" {
		t.Errorf("FailedFiles = %v, want [main.py]", result.FailedFiles)
	}
	for _, p := range result.Files {
		if p == "main.py" {
			t.Error("failed path also listed as uploaded")
		}
	}
}

func TestCreateArtifactRepositoryCreationFails(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}

	t.Run("error from publisher", func(t *testing.T) {
		repos := &fakeRepoPublisher{createErr: errors.New("name taken")}
		svc := newTestService(courses, repos, nil)

		_, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID})
		if !errors.Is(err, ErrRemoteCreation) {
			t.Errorf("error = %v, want ErrRemoteCreation", err)
		}
	})

	t.Run("nil repository without error", func(t *testing.T) {
		repos := &fakeRepoPublisher{repo: nil}
		svc := newTestService(courses, repos, nil)

		_, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID})
		if !errors.Is(err, ErrRemoteCreation) {
			t.Errorf("error = %v, want ErrRemoteCreation", err)
		}
	})
}

func TestCreateArtifactWritingBranch(t *testing.T) {
	t.Parallel()

	a := writingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	pages := &fakePagePublisher{ref: &PageRef{ID: "page-9", URL: "https://example.com/page-9"}}
	svc := newTestService(courses, nil, pages)

	result, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID})
	if err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}

	if result.Destination != TypeWriting {
		t.Errorf("Destination = %v, want %v", result.Destination, TypeWriting)
	}
	if result.Page == nil || result.Page.ID != "page-9" {
		t.Fatalf("Page = %+v, want the created page reference", result.Page)
	}
	if result.Repository != nil {
		t.Error("writing branch must not create a repository")
	}

	if pages.got.Title != a.Name {
		t.Errorf("page title = %q, want %q", pages.got.Title, a.Name)
	}
	if pages.got.DueDate != a.DueAt {
		t.Errorf("page due date = %q, want %q", pages.got.DueDate, a.DueAt)
	}
	if pages.got.Description == "" {
		t.Error("page description is empty")
	}
}

func TestCreateArtifactWritingUnconfigured(t *testing.T) {
	t.Parallel()

	a := writingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	pages := &fakePagePublisher{
		configuredErr: fmt.Errorf("%w: NOTION_TOKEN", ErrConfigIncomplete),
	}
	svc := newTestService(courses, nil, pages)

	_, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID})
	if !errors.Is(err, ErrConfigIncomplete) {
		t.Fatalf("error = %v, want ErrConfigIncomplete", err)
	}
	if pages.created {
		t.Error("CreatePage called despite missing configuration")
	}
}

func TestCreateArtifactPageCreationFails(t *testing.T) {
	t.Parallel()

	a := writingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	pages := &fakePagePublisher{createErr: errors.New("service unavailable")}
	svc := newTestService(courses, nil, pages)

	_, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID})
	if !errors.Is(err, ErrRemoteCreation) {
		t.Errorf("error = %v, want ErrRemoteCreation", err)
	}
}

func TestCreateArtifactPageDescriptionTruncated(t *testing.T) {
	t.Parallel()

	long := ""
	for len(long) < MaxPageDescription+500 {
		long += "essay citation paragraph thesis "
	}
	a := Assignment{ID: 3, Name: "Long Essay", Description: long}
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	pages := &fakePagePublisher{ref: &PageRef{ID: "p"}}
	svc := newTestService(courses, nil, pages)

	if _, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID}); err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}
	if len(pages.got.Description) > MaxPageDescription {
		t.Errorf("page description length %d exceeds cap %d", len(pages.got.Description), MaxPageDescription)
	}
}

func TestCreateArtifactTypeOverride(t *testing.T) {
	t.Parallel()

	// The description reads as writing; the override forces the coding branch.
	a := writingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	repos := &fakeRepoPublisher{repo: &Repository{Name: "essay-repo", Owner: "octocat"}}
	pages := &fakePagePublisher{}
	svc := newTestService(courses, repos, pages)

	result, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID, Type: "coding"})
	if err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}
	if result.Destination != TypeCoding {
		t.Errorf("Destination = %v, want %v", result.Destination, TypeCoding)
	}
	if pages.created {
		t.Error("page created despite coding override")
	}
}

func TestCreateArtifactInvalidTypeOverride(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	svc := newTestService(courses, nil, nil)

	_, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID, Type: "essay"})
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("error = %v, want ErrInvalidType", err)
	}
}

func TestCreateArtifactMissingCourse(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	if _, err := svc.CreateArtifact(context.Background(), CreateInput{}); !errors.Is(err, ErrMissingCourse) {
		t.Errorf("error = %v, want ErrMissingCourse", err)
	}
	if _, err := svc.ListAssignments(context.Background(), 0); !errors.Is(err, ErrMissingCourse) {
		t.Errorf("ListAssignments error = %v, want ErrMissingCourse", err)
	}
}

func TestFetchAssignmentDirectLookup(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	svc := newTestService(courses, nil, nil)

	got, err := svc.FetchAssignment(context.Background(), 1, a.ID)
	if err != nil {
		t.Fatalf("FetchAssignment() error: %v", err)
	}
	if got.ID != a.ID || got.Name != a.Name {
		t.Errorf("FetchAssignment() = %+v, want %+v", got, a)
	}

	_, err = svc.FetchAssignment(context.Background(), 1, 999)
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("error = %v, want ErrAssignmentNotFound", err)
	}
}

func TestFetchAssignmentNextUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	courses := &fakeCourseClient{assignments: map[int64][]Assignment{
		1: {
			{ID: 10, DueAt: "2024-07-01T00:00:00Z"},
			{ID: 11, DueAt: "2024-06-15T00:00:00Z"},
		},
		2: nil,
	}}
	svc := newTestService(courses, nil, nil, WithClock(func() time.Time { return now }))

	got, err := svc.FetchAssignment(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("FetchAssignment() error: %v", err)
	}
	if got.ID != 11 {
		t.Errorf("FetchAssignment() picked ID %d, want 11", got.ID)
	}

	_, err = svc.FetchAssignment(context.Background(), 2, 0)
	if !errors.Is(err, ErrNoAssignments) {
		t.Errorf("error = %v, want ErrNoAssignments", err)
	}
}

func TestServiceOwnerFallback(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	repos := &fakeRepoPublisher{repo: &Repository{Name: "graph-search-lab"}} // no owner in the record
	svc := newTestService(courses, repos, nil, WithOwner("classroom-org"))

	if _, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID}); err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}
	if len(repos.uploads) == 0 {
		t.Fatal("no files were uploaded")
	}
	if repos.uploads[0].owner != "classroom-org" {
		t.Errorf("upload owner = %q, want the configured fallback", repos.uploads[0].owner)
	}
}

func TestServiceBranchAndPrivacyOptions(t *testing.T) {
	t.Parallel()

	a := codingAssignment()
	courses := &fakeCourseClient{byID: map[int64]*Assignment{a.ID: &a}}
	repos := &fakeRepoPublisher{repo: &Repository{Name: "graph-search-lab", Owner: "octocat"}}
	svc := newTestService(courses, repos, nil, WithBranch("develop"), WithPrivateRepos(true))

	if _, err := svc.CreateArtifact(context.Background(), CreateInput{CourseID: 1, AssignmentID: a.ID}); err != nil {
		t.Fatalf("CreateArtifact() error: %v", err)
	}
	if !repos.private {
		t.Error("repository not created as private")
	}
	if len(repos.uploads) == 0 || repos.uploads[0].branch != "develop" {
		t.Errorf("uploads did not target the configured branch: %+v", repos.uploads)
	}
}

func TestInferAssignmentTypeUsesConfiguredKeywords(t *testing.T) {
	t.Parallel()

	kw := Keywords{Coding: []string{"kata"}, Writing: []string{"journal"}}
	svc := newTestService(nil, nil, nil, WithKeywords(kw))

	if got := svc.InferAssignmentType(Assignment{Name: "Weekly Journal"}); got != TypeWriting {
		t.Errorf("InferAssignmentType() = %v, want %v", got, TypeWriting)
	}
	if got := svc.InferAssignmentType(Assignment{Name: "Morning Kata"}); got != TypeCoding {
		t.Errorf("InferAssignmentType() = %v, want %v", got, TypeCoding)
	}
}
