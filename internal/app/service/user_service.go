package service

import (
	"context"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/ports"
)

// UserService wraps the user operations. No task workflow exercises them;
// they exist so user records can be created and looked up by id or
// username. Users have no delete and no HTTP routes.
type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	return s.userRepository.CreateUser(ctx, input)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepository.GetUser(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.userRepository.GetUserByUsername(ctx, username)
}

var _ ports.UserService = (*UserService)(nil)
