package repository

import (
	"context"
	"errors"
	"fmt"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CarRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewCarRepo(db *pgxpool.Pool) *CarRepo {
	return &CarRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var carColumns = []string{
	"id", "brand", "model", "year", "model_year", "version", "transmission",
	"doors", "fuel", "mileage", "plate", "color", "seats", "price", "status",
	"consigned", "description", "optionals", "additional_info", "images",
	"created_at", "updated_at",
}

func scanCar(row interface{ Scan(...any) error }) (models.Car, error) {
	var car models.Car
	err := row.Scan(
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.Year,
		&car.ModelYear,
		&car.Version,
		&car.Transmission,
		&car.Doors,
		&car.Fuel,
		&car.Mileage,
		&car.Plate,
		&car.Color,
		&car.Seats,
		&car.Price,
		&car.Status,
		&car.Consigned,
		&car.Description,
		&car.Optionals,
		&car.AdditionalInfo,
		&car.Images,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	return car, err
}

// SaveCar inserts a new car and its image rows in one transaction.
func (r *CarRepo) SaveCar(ctx context.Context, car models.Car) (uuid.UUID, error) {
	const op = "repository.CarRepo.SaveCar"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Insert("cars").
		Columns(
			"brand", "model", "year", "model_year", "version", "transmission",
			"doors", "fuel", "mileage", "plate", "color", "seats", "price",
			"status", "consigned", "description", "optionals",
			"additional_info", "images",
		).
		Values(
			car.Brand, car.Model, car.Year, car.ModelYear, car.Version,
			car.Transmission, car.Doors, car.Fuel, car.Mileage, car.Plate,
			car.Color, car.Seats, car.Price, car.Status, car.Consigned,
			car.Description, car.Optionals, car.AdditionalInfo, car.Images,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.replaceCarImages(ctx, tx, id, car.Images); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateCar rewrites all car fields and regenerates the image rows in the
// same transaction, so the car_images table never disagrees with the images
// array.
func (r *CarRepo) UpdateCar(ctx context.Context, car models.Car) error {
	const op = "repository.CarRepo.UpdateCar"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Update("cars").
		Set("brand", car.Brand).
		Set("model", car.Model).
		Set("year", car.Year).
		Set("model_year", car.ModelYear).
		Set("version", car.Version).
		Set("transmission", car.Transmission).
		Set("doors", car.Doors).
		Set("fuel", car.Fuel).
		Set("mileage", car.Mileage).
		Set("plate", car.Plate).
		Set("color", car.Color).
		Set("seats", car.Seats).
		Set("price", car.Price).
		Set("status", car.Status).
		Set("consigned", car.Consigned).
		Set("description", car.Description).
		Set("optionals", car.Optionals).
		Set("additional_info", car.AdditionalInfo).
		Set("images", car.Images).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": car.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCarNotFound)
	}

	if err := r.replaceCarImages(ctx, tx, car.ID, car.Images); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CarRepo) replaceCarImages(ctx context.Context, tx pgx.Tx, carID uuid.UUID, images []string) error {
	query, args, err := r.sb.Delete("car_images").
		Where(squirrel.Eq{"car_id": carID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return err
	}

	if len(images) == 0 {
		return nil
	}

	insert := r.sb.Insert("car_images").Columns("car_id", "url", "position")
	for i, url := range images {
		insert = insert.Values(carID, url, i)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

// UpdateStatus changes only the status column.
func (r *CarRepo) UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error {
	const op = "repository.CarRepo.UpdateStatus"

	query, args, err := r.sb.Update("cars").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": carID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCarNotFound)
	}

	return nil
}

// DeleteCar removes the car row; car_images rows go with it via ON DELETE
// CASCADE.
func (r *CarRepo) DeleteCar(ctx context.Context, carID uuid.UUID) error {
	const op = "repository.CarRepo.DeleteCar"

	query, args, err := r.sb.Delete("cars").
		Where(squirrel.Eq{"id": carID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrCarNotFound)
	}

	return nil
}

func (r *CarRepo) GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	const op = "repository.CarRepo.GetCarByID"

	query, args, err := r.sb.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": carID}).
		ToSql()
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	car, err := scanCar(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Car{}, fmt.Errorf("%s: %w", op, storage.ErrCarNotFound)
		}
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	return car, nil
}

// CatalogConditions translates a catalog filter into SQL predicates. All set
// fields combine with AND; only AVAILABLE cars are ever visible through the
// catalog. Exported so the filter semantics can be tested without a database.
func CatalogConditions(f models.CatalogFilter) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{squirrel.Eq{"status": models.CarStatusAvailable}}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		// Year is exact-match on purpose, unlike the substring fields.
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"brand": pattern},
			squirrel.ILike{"model": pattern},
			squirrel.ILike{"plate": pattern},
			squirrel.Eq{"year": f.Search},
		})
	}
	if f.Brand != "" {
		conds = append(conds, squirrel.ILike{"brand": "%" + f.Brand + "%"})
	}
	if f.YearMin != "" {
		conds = append(conds, squirrel.GtOrEq{"year": f.YearMin})
	}
	if f.YearMax != "" {
		conds = append(conds, squirrel.LtOrEq{"year": f.YearMax})
	}
	if f.PriceMin > 0 {
		conds = append(conds, squirrel.GtOrEq{"price": f.PriceMin})
	}
	if f.PriceMax > 0 {
		conds = append(conds, squirrel.LtOrEq{"price": f.PriceMax})
	}

	return conds
}

// GetCatalog returns one page of AVAILABLE cars matching the filter, newest
// first, plus the total match count. limit 0 disables pagination and returns
// every match.
func (r *CarRepo) GetCatalog(ctx context.Context, filter models.CatalogFilter, limit, offset uint64) ([]models.Car, int, error) {
	const op = "repository.CarRepo.GetCatalog"

	conds := CatalogConditions(filter)

	countBuilder := r.sb.Select("COUNT(*)").From("cars")
	for _, cond := range conds {
		countBuilder = countBuilder.Where(cond)
	}

	query, args, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var totalCount int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	queryBuilder := r.sb.Select(carColumns...).From("cars")
	for _, cond := range conds {
		queryBuilder = queryBuilder.Where(cond)
	}
	// id breaks ties between cars created in the same instant, so pages
	// never overlap.
	queryBuilder = queryBuilder.OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit).Offset(offset)
	}

	query, args, err = queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		cars = append(cars, car)
	}

	return cars, totalCount, nil
}

// GetAllCars returns the full inventory regardless of status, newest first.
func (r *CarRepo) GetAllCars(ctx context.Context) ([]models.Car, error) {
	const op = "repository.CarRepo.GetAllCars"

	query, args, err := r.sb.Select(carColumns...).
		From("cars").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}

// GetBrands returns the distinct brands of AVAILABLE cars, ascending.
func (r *CarRepo) GetBrands(ctx context.Context) ([]string, error) {
	const op = "repository.CarRepo.GetBrands"

	query, args, err := r.sb.Select("DISTINCT brand").
		From("cars").
		Where(squirrel.Eq{"status": models.CarStatusAvailable}).
		OrderBy("brand ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		brands = append(brands, brand)
	}

	return brands, nil
}

// GetCarsForExport returns AVAILABLE cars ordered for the spreadsheet: brand
// then model. consigned nil means both own and consigned stock.
func (r *CarRepo) GetCarsForExport(ctx context.Context, consigned *bool) ([]models.Car, error) {
	const op = "repository.CarRepo.GetCarsForExport"

	queryBuilder := r.sb.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"status": models.CarStatusAvailable})

	if consigned != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"consigned": *consigned})
	}

	query, args, err := queryBuilder.
		OrderBy("brand ASC", "model ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cars = append(cars, car)
	}

	return cars, nil
}
