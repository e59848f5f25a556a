package dao

import "gorm.io/gorm"

const activeCartIndex = "uniq_carts_active_user"

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Raffle{},
		&RaffleStatistics{},
		&Ticket{},
		&Cart{},
	); err != nil {
		return err
	}

	// At most one ACTIVE cart per user. The cart service serializes on the user
	// row; this index only backs it up.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + activeCartIndex +
		` ON carts (user_id) WHERE status = 'ACTIVE'`).Error
}

// DropTables removes every table created by InitTables.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Cart{},
		&Ticket{},
		&RaffleStatistics{},
		&Raffle{},
		&User{},
	)
}
