package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/evaluation"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/responder"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/sqlcheck"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requireWorkspace gates every workspace-scoped operation.
func (s *Session) requireWorkspace() (uuid.UUID, error) {
	if s.Nav.CurrentWorkspaceID == nil {
		return uuid.Nil, &PrerequisiteError{Missing: []string{"workspace"}}
	}
	return *s.Nav.CurrentWorkspaceID, nil
}

func notFound(kind string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

// ---------------------------------------------------------------------------
// Workspaces

func (s *Session) CreateWorkspace(name, description string, teamMembers []string) (*entity.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("Please enter a workspace name")
	}

	members := make([]string, 0, len(teamMembers))
	for _, member := range teamMembers {
		if trimmed := strings.TrimSpace(member); trimmed != "" {
			members = append(members, trimmed)
		}
	}

	workspace := entity.Workspace{
		Name:        name,
		Description: description,
		CreatedBy:   s.User.Email,
		TeamMembers: members,
	}
	if err := s.DB.Create(&workspace).Error; err != nil {
		return nil, err
	}

	// a freshly created workspace becomes the current one
	s.Nav.selectWorkspace(workspace.ID)
	return &workspace, nil
}

func (s *Session) ListWorkspaces() ([]entity.Workspace, error) {
	var workspaces []entity.Workspace
	if err := s.DB.Order("created_at").Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (s *Session) FindWorkspace(id uuid.UUID) (*entity.Workspace, error) {
	var workspace entity.Workspace
	if err := s.DB.Where("id = ?", id).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("workspace", id)
		}
		return nil, err
	}
	return &workspace, nil
}

func (s *Session) SelectWorkspace(id uuid.UUID) (*entity.Workspace, error) {
	workspace, err := s.FindWorkspace(id)
	if err != nil {
		return nil, err
	}
	s.Nav.selectWorkspace(workspace.ID)
	return workspace, nil
}

func (s *Session) CurrentWorkspace() (*entity.Workspace, error) {
	id, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	return s.FindWorkspace(id)
}

// DeleteWorkspace removes the workspace record only. Children keep their
// workspace_id and become unreachable; the current pointer and its dependent
// selections are cleared when they referenced the deleted workspace.
func (s *Session) DeleteWorkspace(id uuid.UUID) error {
	workspace, err := s.FindWorkspace(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(workspace).Error; err != nil {
		return err
	}
	if s.Nav.CurrentWorkspaceID != nil && *s.Nav.CurrentWorkspaceID == id {
		s.Nav.clearWorkspace()
	}
	return nil
}

// ---------------------------------------------------------------------------
// Datasets

// UpsertDataset saves table metadata for a (project, dataset) pair in the
// current workspace, replacing the fields in place when the pair already
// exists. The saved dataset becomes the selected one.
func (s *Session) UpsertDataset(project, dataset string, tables []entity.TableMeta) (*entity.Dataset, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(project) == "" || strings.TrimSpace(dataset) == "" {
		return nil, newValidationError("Project and dataset are required")
	}

	var existing entity.Dataset
	err = s.DB.Where("project = ? AND dataset = ? AND workspace_id = ?", project, dataset, workspaceID).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Tables = tables
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		s.Nav.SelectedDatasetID = &existing.ID
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := entity.Dataset{
			Project:     project,
			Dataset:     dataset,
			Tables:      tables,
			WorkspaceID: workspaceID,
		}
		if err := s.DB.Create(&record).Error; err != nil {
			return nil, err
		}
		s.Nav.SelectedDatasetID = &record.ID
		return &record, nil
	default:
		return nil, err
	}
}

func (s *Session) ListDatasets() ([]entity.Dataset, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	var datasets []entity.Dataset
	if err := s.DB.Where("workspace_id = ?", workspaceID).Order("created_at").Find(&datasets).Error; err != nil {
		return nil, err
	}
	return datasets, nil
}

func (s *Session) FindDataset(id uuid.UUID) (*entity.Dataset, error) {
	var dataset entity.Dataset
	if err := s.DB.Where("id = ?", id).First(&dataset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("dataset", id)
		}
		return nil, err
	}
	return &dataset, nil
}

func (s *Session) SelectDataset(id uuid.UUID) (*entity.Dataset, error) {
	dataset, err := s.FindDataset(id)
	if err != nil {
		return nil, err
	}
	s.Nav.SelectedDatasetID = &dataset.ID
	return dataset, nil
}

func (s *Session) DeleteDataset(id uuid.UUID) error {
	dataset, err := s.FindDataset(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(dataset).Error; err != nil {
		return err
	}
	if s.Nav.SelectedDatasetID != nil && *s.Nav.SelectedDatasetID == id {
		s.Nav.SelectedDatasetID = nil
	}
	return nil
}

// ---------------------------------------------------------------------------
// Materials

// MaterialInput carries the editable fields of a material through create and
// update.
type MaterialInput struct {
	Name          string             `json:"name"`
	TrainSetName  string             `json:"train_set_name"`
	TestSetName   string             `json:"test_set_name"`
	TrainingSet   []entity.QueryPair `json:"training_set"`
	TestSet       []entity.QueryPair `json:"test_set"`
	KnowledgeData string             `json:"knowledge_data"`
}

// validate applies the material rules: name present, both sets non-empty, and
// every SQL passing the sanity check. All violations are reported together.
func (in MaterialInput) validate() error {
	var messages []string
	if strings.TrimSpace(in.Name) == "" {
		messages = append(messages, "Material name is required")
	}
	if len(in.TrainingSet) == 0 {
		messages = append(messages, "Please add at least one training example")
	}
	if len(in.TestSet) == 0 {
		messages = append(messages, "Please add at least one test example")
	}
	for i, pair := range in.TrainingSet {
		if !sqlcheck.IsWellFormed(pair.SQL) {
			messages = append(messages, fmt.Sprintf("Training query #%d is not valid SQL: %s", i+1, truncateSQL(pair.SQL)))
		}
	}
	for i, pair := range in.TestSet {
		if !sqlcheck.IsWellFormed(pair.SQL) {
			messages = append(messages, fmt.Sprintf("Test query #%d is not valid SQL: %s", i+1, truncateSQL(pair.SQL)))
		}
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func truncateSQL(sql string) string {
	if len(sql) > 50 {
		return sql[:50] + "..."
	}
	return sql
}

func (s *Session) CreateMaterial(in MaterialInput) (*entity.Material, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	material := entity.Material{
		Name:          in.Name,
		WorkspaceID:   workspaceID,
		TrainingSet:   in.TrainingSet,
		TestSet:       in.TestSet,
		TrainSetName:  in.TrainSetName,
		TestSetName:   in.TestSetName,
		KnowledgeData: in.KnowledgeData,
	}
	if err := s.DB.Create(&material).Error; err != nil {
		return nil, err
	}
	s.Nav.SelectedMaterialID = &material.ID
	return &material, nil
}

func (s *Session) UpdateMaterial(id uuid.UUID, in MaterialInput) (*entity.Material, error) {
	material, err := s.FindMaterial(id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	material.Name = in.Name
	material.TrainingSet = in.TrainingSet
	material.TestSet = in.TestSet
	material.TrainSetName = in.TrainSetName
	material.TestSetName = in.TestSetName
	material.KnowledgeData = in.KnowledgeData
	if err := s.DB.Save(material).Error; err != nil {
		return nil, err
	}
	return material, nil
}

func (s *Session) ListMaterials() ([]entity.Material, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	var materials []entity.Material
	if err := s.DB.Where("workspace_id = ?", workspaceID).Order("created_at").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (s *Session) FindMaterial(id uuid.UUID) (*entity.Material, error) {
	var material entity.Material
	if err := s.DB.Where("id = ?", id).First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("material", id)
		}
		return nil, err
	}
	return &material, nil
}

func (s *Session) SelectMaterial(id uuid.UUID) (*entity.Material, error) {
	material, err := s.FindMaterial(id)
	if err != nil {
		return nil, err
	}
	s.Nav.SelectedMaterialID = &material.ID
	return material, nil
}

func (s *Session) DeleteMaterial(id uuid.UUID) error {
	material, err := s.FindMaterial(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(material).Error; err != nil {
		return err
	}
	if s.Nav.SelectedMaterialID != nil && *s.Nav.SelectedMaterialID == id {
		s.Nav.SelectedMaterialID = nil
	}
	return nil
}

// ---------------------------------------------------------------------------
// Experiments

// CreateExperiment snapshots the dataset and material, runs the evaluation
// synchronously, and stores the completed experiment. The new experiment
// becomes current and navigation moves to the list tab.
func (s *Session) CreateExperiment(datasetID, materialID uuid.UUID, name, description string) (*entity.Experiment, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}

	var missing []string
	if datasetID == uuid.Nil {
		missing = append(missing, "dataset")
	}
	if materialID == uuid.Nil {
		missing = append(missing, "material")
	}
	if len(missing) > 0 {
		return nil, &PrerequisiteError{Missing: missing}
	}

	dataset, err := s.FindDataset(datasetID)
	if err != nil {
		return nil, err
	}
	material, err := s.FindMaterial(materialID)
	if err != nil {
		return nil, err
	}
	if len(material.TrainingSet) == 0 || len(material.TestSet) == 0 {
		return nil, newValidationError("Material must have non-empty training and test sets")
	}

	if strings.TrimSpace(name) == "" {
		var count int64
		s.DB.Model(&entity.Experiment{}).Where("workspace_id = ?", workspaceID).Count(&count)
		name = fmt.Sprintf("Experiment-%d", count+1)
	}

	experiment := entity.Experiment{
		Name:        name,
		Description: description,
		WorkspaceID: workspaceID,
		DatasetID:   dataset.ID,
		Dataset:     *dataset,
		MaterialID:  material.ID,
		Material:    *material,
		Status:      entity.ExperimentStatusCompleted,
		Results:     evaluation.Run(*material),
	}
	if err := s.DB.Create(&experiment).Error; err != nil {
		return nil, err
	}

	s.Nav.CurrentExperimentID = &experiment.ID
	s.Nav.SetIntent(Intent{Screen: ScreenExperiment, Tab: "list"})
	return &experiment, nil
}

// ListExperiments returns the workspace's experiments, optionally filtered by
// the snapshot material's test set name.
func (s *Session) ListExperiments(testSetName string) ([]entity.Experiment, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	var experiments []entity.Experiment
	if err := s.DB.Where("workspace_id = ?", workspaceID).Order("created_at").Find(&experiments).Error; err != nil {
		return nil, err
	}
	if testSetName == "" {
		return experiments, nil
	}
	filtered := experiments[:0]
	for _, experiment := range experiments {
		if experiment.Material.TestSetName == testSetName {
			filtered = append(filtered, experiment)
		}
	}
	return filtered, nil
}

func (s *Session) FindExperiment(id uuid.UUID) (*entity.Experiment, error) {
	var experiment entity.Experiment
	if err := s.DB.Where("id = ?", id).First(&experiment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("experiment", id)
		}
		return nil, err
	}
	return &experiment, nil
}

// RetryExperiment evaluates the source experiment's snapshots again as a brand
// new experiment. The original record is never mutated.
func (s *Session) RetryExperiment(id uuid.UUID) (*entity.Experiment, error) {
	source, err := s.FindExperiment(id)
	if err != nil {
		return nil, err
	}

	retry := entity.Experiment{
		Name:        source.Name + " (retry)",
		Description: source.Description,
		WorkspaceID: source.WorkspaceID,
		DatasetID:   source.DatasetID,
		Dataset:     source.Dataset,
		MaterialID:  source.MaterialID,
		Material:    source.Material,
		Status:      entity.ExperimentStatusCompleted,
		Results:     evaluation.Run(source.Material),
	}
	if err := s.DB.Create(&retry).Error; err != nil {
		return nil, err
	}

	s.Nav.CurrentExperimentID = &retry.ID
	s.Nav.SetIntent(Intent{Screen: ScreenExperiment, Tab: "list"})
	return &retry, nil
}

// ---------------------------------------------------------------------------
// Assistants

// DeployAssistant promotes an experiment into an assistant. The version is the
// next one in the (workspace, name) lineage, starting at 1.
func (s *Session) DeployAssistant(experimentID uuid.UUID, name, description string) (*entity.Assistant, error) {
	experiment, err := s.FindExperiment(experimentID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		name = "Assistant from " + experiment.Name
	}
	if strings.TrimSpace(description) == "" {
		description = "Created from experiment " + experiment.Name
	}

	var maxVersion int
	row := s.DB.Model(&entity.Assistant{}).
		Where("workspace_id = ? AND name = ?", experiment.WorkspaceID, name).
		Select("COALESCE(MAX(version), 0)").
		Row()
	if err := row.Scan(&maxVersion); err != nil {
		return nil, err
	}

	assistant := entity.Assistant{
		Name:         name,
		Description:  description,
		WorkspaceID:  experiment.WorkspaceID,
		ExperimentID: experiment.ID,
		Dataset:      experiment.Dataset,
		Material:     experiment.Material,
		Version:      maxVersion + 1,
		Status:       entity.AssistantStatusActive,
	}
	if err := s.DB.Create(&assistant).Error; err != nil {
		return nil, err
	}

	s.Nav.SetIntent(Intent{Screen: ScreenAssistant})
	return &assistant, nil
}

// ListAssistants returns the workspace's assistants ordered so lineages come
// out grouped, versions ascending.
func (s *Session) ListAssistants() ([]entity.Assistant, error) {
	workspaceID, err := s.requireWorkspace()
	if err != nil {
		return nil, err
	}
	var assistants []entity.Assistant
	if err := s.DB.Where("workspace_id = ?", workspaceID).
		Order("name, version").Find(&assistants).Error; err != nil {
		return nil, err
	}
	return assistants, nil
}

func (s *Session) FindAssistant(id uuid.UUID) (*entity.Assistant, error) {
	var assistant entity.Assistant
	if err := s.DB.Where("id = ?", id).First(&assistant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("assistant", id)
		}
		return nil, err
	}
	return &assistant, nil
}

// SelectAssistant makes an assistant (and its version) current for chatting.
// Switching to a different assistant or version drops the previous chat
// history and starts a fresh session.
func (s *Session) SelectAssistant(id uuid.UUID) (*entity.Assistant, error) {
	assistant, err := s.FindAssistant(id)
	if err != nil {
		return nil, err
	}

	switching := s.Nav.CurrentAssistantID == nil ||
		*s.Nav.CurrentAssistantID != assistant.ID ||
		s.Nav.CurrentAssistantVersion != assistant.Version

	s.Nav.CurrentAssistantID = &assistant.ID
	s.Nav.CurrentAssistantVersion = assistant.Version

	if switching {
		if err := s.resetChat(assistant.ID, assistant.Version); err != nil {
			return nil, err
		}
	}
	return assistant, nil
}

// ---------------------------------------------------------------------------
// Chat

func (s *Session) currentAssistant() (*entity.Assistant, error) {
	if s.Nav.CurrentAssistantID == nil {
		return nil, &PrerequisiteError{Missing: []string{"assistant"}}
	}
	return s.FindAssistant(*s.Nav.CurrentAssistantID)
}

// resetChat drops every stored chat session and opens an empty one for the
// given assistant version.
func (s *Session) resetChat(assistantID uuid.UUID, version int) error {
	if err := s.DB.Where("1 = 1").Delete(&entity.ChatMessage{}).Error; err != nil {
		return err
	}
	if err := s.DB.Where("1 = 1").Delete(&entity.ChatSession{}).Error; err != nil {
		return err
	}
	chat := entity.ChatSession{AssistantID: assistantID, Version: version}
	return s.DB.Create(&chat).Error
}

// ActiveChat returns the live chat session with its messages in order.
func (s *Session) ActiveChat() (*entity.ChatSession, error) {
	assistant, err := s.currentAssistant()
	if err != nil {
		return nil, err
	}

	var chat entity.ChatSession
	err = s.DB.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Where("assistant_id = ? AND version = ?", assistant.ID, assistant.Version).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.resetChat(assistant.ID, assistant.Version); err != nil {
			return nil, err
		}
		return s.ActiveChat()
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// SendChat appends the user's message and the fabricated assistant reply to
// the active chat session and returns both.
func (s *Session) SendChat(text string) (*entity.ChatMessage, *entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, newValidationError("Message text is required")
	}

	assistant, err := s.currentAssistant()
	if err != nil {
		return nil, nil, err
	}
	chat, err := s.ActiveChat()
	if err != nil {
		return nil, nil, err
	}

	userMsg := entity.ChatMessage{
		SessionID: chat.ID,
		Role:      entity.ChatRoleUser,
		Content:   text,
	}
	if err := s.DB.Create(&userMsg).Error; err != nil {
		return nil, nil, err
	}

	sql, table := responder.Respond(*assistant, text)
	reply := entity.ChatMessage{
		SessionID: chat.ID,
		Role:      entity.ChatRoleAssistant,
		Content:   responder.ReplyContent,
		SQL:       sql,
		Result:    &table,
	}
	if err := s.DB.Create(&reply).Error; err != nil {
		return nil, nil, err
	}
	return &userMsg, &reply, nil
}

// ClearChat empties the active chat history without switching assistants.
func (s *Session) ClearChat() error {
	assistant, err := s.currentAssistant()
	if err != nil {
		return err
	}
	return s.resetChat(assistant.ID, assistant.Version)
}

// ---------------------------------------------------------------------------
// Dashboard

// Metrics is the home screen summary. Workspace-scoped counts when a
// workspace is current, totals otherwise.
type Metrics struct {
	Workspaces  int64 `json:"workspaces"`
	Experiments int64 `json:"experiments"`
	Assistants  int64 `json:"assistants"`
}

func (s *Session) DashboardMetrics() (*Metrics, error) {
	var metrics Metrics
	if err := s.DB.Model(&entity.Workspace{}).Count(&metrics.Workspaces).Error; err != nil {
		return nil, err
	}

	experiments := s.DB.Model(&entity.Experiment{})
	assistants := s.DB.Model(&entity.Assistant{})
	if s.Nav.CurrentWorkspaceID != nil {
		experiments = experiments.Where("workspace_id = ?", *s.Nav.CurrentWorkspaceID)
		assistants = assistants.Where("workspace_id = ?", *s.Nav.CurrentWorkspaceID)
	}
	if err := experiments.Count(&metrics.Experiments).Error; err != nil {
		return nil, err
	}
	if err := assistants.Count(&metrics.Assistants).Error; err != nil {
		return nil, err
	}
	return &metrics, nil
}
