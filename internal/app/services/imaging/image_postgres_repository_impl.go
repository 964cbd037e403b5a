package imaging

import (
	"context"
	"database/sql"
	"time"

	"aura-service/internal/app/contracts"
	"aura-service/internal/app/models"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/queries"
)

type imagePostgresRepository struct {
	DB *sql.DB
}

func NewImagePostgresRepository(db *sql.DB) contracts.ImageRepository {
	return &imagePostgresRepository{
		DB: db,
	}
}

func (repo *imagePostgresRepository) FindByID(ctx context.Context, imageID string) (*models.ImageMetadata, error) {
	var image models.ImageMetadata
	err := repo.DB.QueryRowContext(ctx, queries.GetImageByID, imageID).Scan(
		&image.ID,
		&image.PatientID,
		&image.ClinicID,
		&image.ImageURL,
		&image.ObjectID,
		&image.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &image, nil
}

func (repo *imagePostgresRepository) CreateImage(ctx context.Context, image *models.ImageMetadata) error {
	_, err := repo.DB.ExecContext(ctx, queries.InsertImage,
		image.ID,
		image.PatientID,
		image.ClinicID,
		image.ImageURL,
		image.ObjectID,
		image.UploadedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *imagePostgresRepository) CountByClinicID(ctx context.Context, clinicID string) (int64, error) {
	var count int64
	err := repo.DB.QueryRowContext(ctx, queries.CountImagesByClinicID, clinicID).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *imagePostgresRepository) FindRecentByClinicID(ctx context.Context, clinicID string, limit int) ([]models.ImageMetadata, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetRecentImagesByClinicID, clinicID, limit)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var images []models.ImageMetadata
	for rows.Next() {
		var image models.ImageMetadata
		if err := rows.Scan(
			&image.ID,
			&image.PatientID,
			&image.ClinicID,
			&image.ImageURL,
			&image.ObjectID,
			&image.UploadedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return images, nil
}

func (repo *imagePostgresRepository) CountByClinicPerDay(ctx context.Context, clinicID string, since time.Time) ([]models.ImageDayCount, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.CountImagesByClinicPerDay, clinicID, since)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var counts []models.ImageDayCount
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		counts = append(counts, models.ImageDayCount{
			Date:  day.UTC().Format("2006-01-02"),
			Count: count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return counts, nil
}
