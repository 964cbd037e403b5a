package auth

import (
	"context"
	"database/sql"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/queries"
)

type userPostgresRepository struct {
	DB *sql.DB
}

func NewUserPostgresRepository(db *sql.DB) contracts.UserRepository {
	return &userPostgresRepository{
		DB: db,
	}
}

func (repo *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return repo.findOne(ctx, queries.GetUserByID, userID)
}

func (repo *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.findOne(ctx, queries.GetUserByEmail, email)
}

func (repo *userPostgresRepository) findOne(ctx context.Context, query, arg string) (*models.User, error) {
	var user models.User
	var clinicID sql.NullString

	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FullName,
		&user.Role,
		&clinicID,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	user.ClinicID = clinicID.String
	return &user, nil
}

func (repo *userPostgresRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertUser,
		user.ID,
		user.Email,
		user.Password,
		user.FullName,
		user.Role,
		user.ClinicID,
		user.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}
