package service

import "terravolt-cms/internal/domain"

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]domain.User, error) { return s.users.List() }

func (s *UserService) Delete(id string) error { return s.users.Delete(id) }
