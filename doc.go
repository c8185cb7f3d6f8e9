// Package agent automates classroom workflow: it fetches assignment
// metadata from Canvas LMS, classifies the assignment as coding or writing,
// and either scaffolds a GitHub repository with starter code or creates a
// Notion page pre-populated with the assignment description converted from
// HTML to Markdown.
//
// # Quick Start
//
// Create a service with your collaborator clients and run the pipeline:
//
//	svc := agent.NewService(canvasClient, githubClient, notionClient,
//	    agent.WithOwner("my-github-org"),
//	)
//
//	result, err := svc.CreateArtifact(ctx, agent.CreateInput{
//	    CourseID: 12345,
//	    Language: "python",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Repository.URL)
//
// When CreateInput.AssignmentID is zero, the service selects the next
// upcoming assignment (earliest future due date); if nothing is upcoming it
// falls back to the most recently created one.
//
// # Pipeline
//
// Each run is a single linear chain:
//
//  1. Fetch one assignment record from the course client
//  2. Classify it as coding or writing (keyword scoring, caller-overridable)
//  3. Coding: generate a starter FileSet and publish it to a new repository
//  4. Writing: publish a three-block assignment page to Notion
//
// Classification and file generation are pure functions of the assignment
// record and the language selector: identical inputs always produce
// identical outputs. The only time dependence is the "next upcoming"
// selection, which compares due dates to the injected clock.
//
// # Collaborators
//
// The Canvas and GitHub collaborators are MCP stdio clients; each remote
// operation opens its own session and tears it down on every exit path.
// The Notion collaborator is a plain REST client gated on two required
// configuration values. All three are consumed through small interfaces
// (CourseClient, RepoPublisher, PagePublisher) so tests inject fakes.
//
// No call is retried anywhere: a remote failure is terminal for the run,
// except that file uploads into an already-created repository fail soft and
// are reported in Result.FailedFiles.
package agent
