package drone

import (
	"context"
	"database/sql"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type DroneRepository interface {
	List(ctx context.Context, category constant.DroneCategory, page, perPage int) ([]model.DroneListItem, int64, error)
	GetByID(ctx context.Context, id string) (*model.DroneDetail, error)
}

func NewDroneRepository(conn *sqlx.DB) DroneRepository {
	return &SQL{conn: conn}
}

const (
	listDronesBase = `SELECT id, name, category, price, image FROM drone`

	countDronesBase = `SELECT COUNT(*) FROM drone`

	getDroneDetail = `SELECT id, name, category, price, image, description,
spec_range, spec_battery, spec_camera, spec_weight, spec_dimensions, flight_controller
FROM drone WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, category constant.DroneCategory, page, perPage int) ([]model.DroneListItem, int64, error) {
	offset := (page - 1) * perPage

	listQuery := listDronesBase
	countQuery := countDronesBase
	args := make([]any, 0, 3)

	if category != "" {
		listQuery += " WHERE category = ?"
		countQuery += " WHERE category = ?"
		args = append(args, category)
	}
	listQuery += " ORDER BY id LIMIT ? OFFSET ?"

	rows, err := s.conn.QueryxContext(ctx, listQuery, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.DroneListItem, 0)
	for rows.Next() {
		var it model.DroneListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.DroneDetail, error) {
	var detail model.DroneDetail
	if err := s.conn.QueryRowxContext(ctx, getDroneDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
