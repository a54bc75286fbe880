package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectMySQL: 계정 DB(MySQL) 연결을 설정하고 반환
func ConnectMySQL() (*gorm.DB, error) {
	dsn := GetMySQLDSN()
	if dsn == "" {
		log.Fatal("❌ 계정 DB DSN이 설정되지 않았습니다.")
	}

	// 계정 조회는 요청마다 발생하므로 gorm 쿼리 로그는 끈다
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("❌ 계정 DB 연결 실패: %v", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Println("✅ 계정 DB(MySQL) 연결 성공!")
	return db, nil
}
