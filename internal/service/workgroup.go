package service

import (
	"context"
	"fmt"
	"strings"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
)

type workGroupService struct {
	groups   repository.WorkGroupRepository
	recorder *ActivityRecorder
}

func NewWorkGroupService(groups repository.WorkGroupRepository, recorder *ActivityRecorder) WorkGroupService {
	return &workGroupService{groups: groups, recorder: recorder}
}

func (s *workGroupService) ListWorkGroups(ctx context.Context) ([]domain.WorkGroup, error) {
	return s.groups.List(ctx)
}

func (s *workGroupService) GetWorkGroup(ctx context.Context, id string) (*domain.WorkGroup, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *workGroupService) CreateWorkGroup(ctx context.Context, input CreateWorkGroupInput) (*domain.WorkGroup, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, missingField("name")
	}
	if input.LeaderID == "" {
		return nil, missingField("leaderId")
	}
	for _, category := range input.Specialization {
		if !category.Valid() {
			return nil, invalidField("specialization", fmt.Sprintf("unknown category %q", category))
		}
	}

	group := &domain.WorkGroup{
		Name:           input.Name,
		Description:    input.Description,
		LeaderID:       input.LeaderID,
		Members:        input.Members,
		Area:           input.Area,
		Specialization: input.Specialization,
		ContactInfo:    input.ContactInfo,
		Category:       input.Category,
		IsActive:       true,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, domain.ActivityGroupCreated,
		fmt.Sprintf("New work group created: %s", group.Name),
		group.LeaderID, group.ID, nil, nil)

	return group, nil
}
