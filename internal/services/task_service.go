package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-task-api/internal/constants"
	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/query"
	"github.com/yukikurage/project-task-api/internal/repository"
	"github.com/yukikurage/project-task-api/internal/validation"
	"gorm.io/gorm"
)

var taskPreloads = []string{"Project", "Creator", "Completer"}

// TaskService handles task business logic
type TaskService struct {
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	relations      *TaskRelations
	validator      *validation.TaskValidator
	suggester      TaskSuggester
	clock          func() time.Time
}

// NewTaskService creates a new TaskService. suggester may be nil.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	assignmentRepo repository.AssignmentRepository,
	relations *TaskRelations,
	validator *validation.TaskValidator,
	suggester TaskSuggester,
) *TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		relations:      relations,
		validator:      validator,
		suggester:      suggester,
		clock:          time.Now,
	}
}

// SetClock replaces the time source used for due-date filters and status.
func (s *TaskService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Now returns the service's current time.
func (s *TaskService) Now() time.Time {
	return s.clock()
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	UserID      uint64
	ProjectID   *uint64
	CreatorID   *uint64
	CompleterID *uint64
	Priority    *models.Priority
	State       repository.TaskState
	DueWithin   *int
	Sort        repository.TaskSort
	Last        int
	Page        int
	PageSize    int
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Name      string
	Priority  models.Priority
	DueOn     *time.Time
	DueString *string
	ProjectID uint64
	CreatorID uint64
}

// UpdateTaskInput represents input for updating a task. Nil fields are left as they are.
type UpdateTaskInput struct {
	Name      *string
	Priority  *models.Priority
	DueOn     *time.Time
	DueString *string
}

// TaskDetail is a task together with its resolved relations.
type TaskDetail struct {
	Task          models.Task
	ProjectName   string
	CreatorName   string
	CompleterName string
	Assignments   []models.Assignment
}

// ProjectSummary aggregates the tasks of one project.
type ProjectSummary struct {
	ProjectID  uint64
	Total      int
	Incomplete int
	Completed  int
	Overdue    int
	DueSoon    int
	DueDays    int
	NextUp     []models.Task
}

// SuggestTasksInput represents input for AI task suggestions
type SuggestTasksInput struct {
	ProjectID uint64
	ActorID   uint64
	Text      string
}

// ListTasks returns tasks visible to a user, narrowed by the input filters
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	projectIDs, err := s.resolveAccessibleProjectIDs(input.UserID, input.ProjectID)
	if err != nil {
		return nil, 0, err
	}

	if len(projectIDs) == 0 {
		return []models.Task{}, 0, nil
	}

	filter := repository.TaskFilter{
		ProjectIDs:  projectIDs,
		CreatorID:   input.CreatorID,
		CompleterID: input.CompleterID,
		Priority:    input.Priority,
		State:       input.State,
		DueWithin:   input.DueWithin,
		Sort:        input.Sort,
		Last:        input.Last,
		Now:         s.clock(),
		Page:        input.Page,
		PageSize:    input.PageSize,
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task with its project, creator and completer loaded
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	return s.findTask(taskID, taskPreloads...)
}

// GetTaskDetail returns a task with every relation resolved
func (s *TaskService) GetTaskDetail(taskID uint64) (*TaskDetail, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	detail := &TaskDetail{Task: *task}

	if detail.ProjectName, err = s.relations.ProjectName(*task); err != nil {
		return nil, err
	}
	if detail.CreatorName, err = s.relations.CreatorProperName(*task); err != nil {
		return nil, err
	}
	if detail.CompleterName, err = s.relations.CompleterProperName(*task); err != nil {
		return nil, err
	}
	if detail.Assignments, err = s.relations.Assignments(*task); err != nil {
		return nil, err
	}

	return detail, nil
}

// CreateTask validates and stores a new task. The creator must be assigned to the project.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if err := s.ensureProjectMember(input.ProjectID, input.CreatorID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:      strings.TrimSpace(input.Name),
		Priority:  input.Priority,
		DueOn:     input.DueOn,
		DueString: input.DueString,
		ProjectID: input.ProjectID,
		CreatedBy: input.CreatorID,
	}

	if err := s.validator.Validate(task, validation.OperationCreate); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.GetTask(task.ID)
}

// UpdateTask applies a partial update and revalidates the task
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = strings.TrimSpace(*input.Name)
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueOn != nil {
		task.DueOn = input.DueOn
	}
	task.DueString = input.DueString

	if err := s.save(task); err != nil {
		return nil, err
	}

	return s.GetTask(task.ID)
}

// CompleteTask marks a task completed by the actor
func (s *TaskService) CompleteTask(taskID, actorID uint64) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, ErrTaskAlreadyCompleted
	}

	task.Completed = true
	task.CompletedBy = &actorID

	if err := s.save(task); err != nil {
		return nil, err
	}

	return s.GetTask(task.ID)
}

// ReopenTask marks a completed task incomplete again
func (s *TaskService) ReopenTask(taskID uint64) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.Completed {
		return nil, ErrTaskNotCompleted
	}

	task.Completed = false
	task.CompletedBy = nil

	if err := s.save(task); err != nil {
		return nil, err
	}

	return s.GetTask(task.ID)
}

// DeleteTask deletes a task if the actor created it or manages its project
func (s *TaskService) DeleteTask(taskID, actorID uint64) error {
	task, err := s.findTask(taskID, "Project")
	if err != nil {
		return err
	}

	if task.CreatedBy != actorID && task.Project.ManagerID != actorID {
		return ErrTaskPermissionDenied
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ProjectSummary counts a project's tasks by state and lists the most
// pressing upcoming ones
func (s *TaskService) ProjectSummary(projectID uint64, days int) (*ProjectSummary, error) {
	if days <= 0 {
		days = constants.DefaultUpcomingDays
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project tasks: %w", err)
	}

	now := s.clock()
	return &ProjectSummary{
		ProjectID:  projectID,
		Total:      len(tasks),
		Incomplete: query.Count(tasks, query.Incomplete()),
		Completed:  query.Count(tasks, query.Completed()),
		Overdue:    query.Count(tasks, query.Overdue(now)),
		DueSoon:    query.Count(tasks, query.Incomplete(), query.InNextDays(now, days)),
		DueDays:    days,
		NextUp: query.Apply(tasks,
			query.Where(query.Incomplete(), query.Upcoming(now)),
			query.ByPriority(),
			query.Last(constants.SummaryUpcomingSize),
		),
	}, nil
}

// SuggestTasks drafts tasks for a project from free text. Drafts are not
// stored; only those passing validation are returned.
func (s *TaskService) SuggestTasks(ctx context.Context, input SuggestTasksInput) ([]models.Task, error) {
	if s.suggester == nil {
		return nil, ErrAIServiceNotConfigured
	}

	if err := s.ensureProjectMember(input.ProjectID, input.ActorID); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	suggestions, err := s.suggester.SuggestTasks(ctx, project.Name, input.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(suggestions) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(suggestions) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("%w (max %d)", ErrAITooManyTasks, constants.MaxAIGeneratedTasks)
	}

	drafts := make([]models.Task, 0, len(suggestions))
	for _, suggestion := range suggestions {
		draft := models.Task{
			Name:      strings.TrimSpace(suggestion.Name),
			Priority:  models.Priority(suggestion.Priority),
			ProjectID: project.ID,
			CreatedBy: input.ActorID,
		}
		if due := strings.TrimSpace(suggestion.DueString); due != "" {
			draft.DueString = &due
		}

		if err := s.validator.Validate(&draft, validation.OperationCreate); err != nil {
			continue
		}
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, ErrAINoValidTasks
	}

	return drafts, nil
}

// save validates an existing task and writes it back
func (s *TaskService) save(task *models.Task) error {
	if err := s.validator.Validate(task, validation.OperationUpdate); err != nil {
		return err
	}
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *TaskService) findTask(taskID uint64, preload ...string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// resolveAccessibleProjectIDs returns the project IDs the user can access
func (s *TaskService) resolveAccessibleProjectIDs(userID uint64, projectID *uint64) ([]uint64, error) {
	if projectID != nil {
		if err := s.ensureProjectMember(*projectID, userID); err != nil {
			return nil, err
		}
		return []uint64{*projectID}, nil
	}

	assignments, err := s.assignmentRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project assignments: %w", err)
	}

	projectIDs := make([]uint64, 0, len(assignments))
	for _, a := range assignments {
		projectIDs = append(projectIDs, a.ProjectID)
	}

	return projectIDs, nil
}

// ensureProjectMember verifies that a user is assigned to a project
func (s *TaskService) ensureProjectMember(projectID, userID uint64) error {
	_, err := s.assignmentRepo.Find(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotProjectMember
		}
		return fmt.Errorf("failed to verify project assignment: %w", err)
	}
	return nil
}
