package repository

import (
	"creatorpay-be-svc/internal/models/response"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardRepository defines the interface for payment reporting queries
type DashboardRepository interface {
	GetPaymentExportRows(companyID uuid.UUID) ([]*response.PaymentExportRow, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetPaymentExportRows retrieves one row per video with the frozen paid
// amounts for a company's payment export. Only frozen amounts are summed;
// the live recalculation never feeds this query.
func (r *dashboardRepository) GetPaymentExportRows(companyID uuid.UUID) ([]*response.PaymentExportRow, error) {
	var results []*response.PaymentExportRow

	query := `
		SELECT
			c.name as creator_name,
			v.title as video_title,
			COALESCE(v.platform, '') as platform,
			v.status,
			v.views,
			v.base_cpm_paid,
			v.base_cpm_paid_at,
			v.base_payment_amount as base_payment,
			v.cpm_payment_amount as cpm_payment,
			COALESCE(SUM(vtp.payment_amount) FILTER (WHERE vtp.paid), 0) as tier_paid_total,
			COALESCE(v.base_payment_amount, 0)
				+ COALESCE(v.cpm_payment_amount, 0)
				+ COALESCE(SUM(vtp.payment_amount) FILTER (WHERE vtp.paid), 0) as total_paid
		FROM videos v
		INNER JOIN creators c ON v.creator_id = c.id
		LEFT JOIN video_tier_payments vtp ON vtp.video_id = v.id
		WHERE v.company_id = ?
		GROUP BY c.name, v.id, v.title, v.platform, v.status, v.views,
			v.base_cpm_paid, v.base_cpm_paid_at, v.base_payment_amount, v.cpm_payment_amount
		ORDER BY c.name, v.submitted_at DESC
	`

	rows, err := r.db.Raw(query, companyID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var result response.PaymentExportRow

		err := rows.Scan(
			&result.CreatorName,
			&result.VideoTitle,
			&result.Platform,
			&result.Status,
			&result.Views,
			&result.BaseCPMPaid,
			&result.BaseCPMPaidAt,
			&result.BasePayment,
			&result.CPMPayment,
			&result.TierPaidTotal,
			&result.TotalPaid,
		)
		if err != nil {
			return nil, err
		}

		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
