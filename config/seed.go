package config

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"office-leasing-backend/models"
)

type officeSeed struct {
	No   int
	Sqft string
	Rent int
}

// The building's unit inventory: office number, floor area in sq ft,
// listed annual rent.
var officeInitialData = []officeSeed{
	{1, "109.79", 71365}, {2, "92.57", 60170},
	{3, "108.72", 70665}, {4, "88.26", 52958},
	{5, "88.26", 52958}, {6, "88.26", 52958},
	{7, "90.42", 54250}, {8, "64.58", 38750},
	{9, "64.58", 38750}, {10, "64.58", 38750},
	{11, "64.58", 38750}, {12, "90.42", 54250},
	{13, "90.42", 54250}, {14, "166.84", 108446},
	{15, "131.32", 78792}, {16, "114.10", 70740},
	{17, "206.67", 134333}, {18, "55.97", 33583},
	{19, "55.97", 33583}, {20, "222.81", 138142},
	{21, "217.43", 141330}, {22, "60.28", 36167},
	{23, "60.28", 36167}, {24, "53.82", 32292},
	{25, "53.82", 32292}, {26, "67.81", 44078},
	{27, "63.51", 38104}, {28, "66.74", 43379},
	{29, "63.51", 38104}, {30, "64.58", 38750},
	{31, "68.89", 41333}, {32, "68.89", 41333},
	{33, "67.81", 40688}, {34, "55.97", 33583},
	{35, "60.28", 36167}, {36, "71.04", 42625},
	{37, "64.58", 38750}, {38, "71.04", 42625},
	{39, "64.58", 38750}, {41, "64.58", 38750},
	{44, "59.20", 36705}, {46, "100.10", 62065},
	{47, "68.89", 41333}, {48, "65.66", 40709},
	{49, "69.97", 41979}, {50, "67.81", 40688},
	{51, "65.66", 40709}, {52, "68.89", 41333},
	{53, "64.58", 40042}, {54, "68.89", 41333},
	{55, "65.66", 40709}, {56, "107.64", 69965},
	{57, "66.74", 43379}, {58, "64.58", 41979},
	{61, "64.58", 38750}, {62, "59.20", 35521},
	{63, "134.55", 83420}, {64, "59.20", 35521},
	{67, "64.58", 40042}, {68, "64.58", 40042},
	{69, "78.58", 48717},
}

// Seed inserts the reference data the application needs on a fresh
// database: office inventory, meeting rooms and a default superuser.
// It is idempotent and safe to re-run on every deployment.
func Seed(db *gorm.DB) error {
	// ---------------- Offices ----------------
	var officeCount int64
	if err := db.Model(&models.Office{}).Count(&officeCount).Error; err != nil {
		return err
	}
	if officeCount == 0 {
		offices := make([]models.Office, 0, len(officeInitialData))
		for _, seed := range officeInitialData {
			offices = append(offices, models.Office{
				OfficeNumber: seed.No,
				SizeSqft:     decimal.RequireFromString(seed.Sqft),
				AnnualRent:   seed.Rent,
				Status:       models.OfficeAvailable,
			})
		}
		if err := db.Create(&offices).Error; err != nil {
			return err
		}
		log.Printf("seeded %d offices", len(offices))
	}

	// ---------------- Meeting rooms ----------------
	var roomCount int64
	if err := db.Model(&models.MeetingRoom{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		rooms := []models.MeetingRoom{
			{Name: "Boardroom", Capacity: 14},
			{Name: "Meeting Room A", Capacity: 8},
			{Name: "Meeting Room B", Capacity: 8},
			{Name: "Huddle Room", Capacity: 4},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return err
		}
		log.Println("meeting rooms seeded")
	}

	// ---------------- Default superuser ----------------
	var adminCount int64
	err := db.Model(&models.User{}).
		Where("username = ?", "admin").
		Count(&adminCount).Error
	if err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:    "admin",
			Password:    string(hash),
			FullName:    "Building Manager",
			Role:        models.RoleManager,
			IsSuperuser: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("default superuser seeded")
	}

	return nil
}
