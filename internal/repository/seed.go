package repository

import "github.com/Preechanamchu/KT-Monitor/internal/models"

type seedStaff struct {
	id       int64
	name     string
	phone    string
	lat, lng float64
	area     string
	status   models.Status
}

var defaultRoster = []seedStaff{
	{1, "สมชาย ใจดี", "081-111-1111", 13.7563, 100.5018, "พระนคร", models.StatusReady},
	{2, "วิชัย รวดเร็ว", "089-222-2222", 13.6900, 100.6000, "บางนา", models.StatusBusy},
	{3, "อำนาจ ประหยัด", "085-333-3333", 13.8000, 100.5500, "จตุจักร", models.StatusReady},
	{4, "ก้องเกียรติ พารวย", "090-444-4444", 13.9000, 100.4500, "นนทบุรี", models.StatusReady},
	{5, "มานะ อดทน", "088-555-5555", 13.6500, 100.4000, "บางขุนเทียน", models.StatusReady},
	{6, "วีระ ขายเก่ง", "081-234-5678", 13.7200, 100.5200, "สาทร", models.StatusReady},
	{7, "ปิติ ยินดี", "089-987-6543", 13.7800, 100.4800, "ปิ่นเกล้า", models.StatusReady},
	{8, "ชูใจ มั่นคง", "086-555-4444", 13.8200, 100.5800, "ลาดพร้าว", models.StatusBusy},
	{9, "แก้ว กล้าหาญ", "092-222-3333", 13.6800, 100.4200, "พระราม 2", models.StatusReady},
	{10, "สุดา พาเพลิน", "084-444-5555", 13.7400, 100.5600, "ทองหล่อ", models.StatusReady},
	{11, "วินัย ใจสู้", "081-123-4567", 13.8500, 100.5200, "งามวงศ์วาน", models.StatusReady},
	{12, "ธิดา รักษ์ดี", "089-111-2222", 13.7000, 100.6200, "อ่อนนุช", models.StatusReady},
}

// DefaultRoster возвращает стартовый реестр из двенадцати сотрудников по Бангкоку
func DefaultRoster() []models.Responder {
	roster := make([]models.Responder, 0, len(defaultRoster))
	for _, s := range defaultRoster {
		area, status := s.area, s.status
		roster = append(roster, models.Responder{
			ID:       s.id,
			Name:     s.name,
			Phone:    s.phone,
			Location: models.Coordinate{Lat: s.lat, Lng: s.lng},
			Area:     &area,
			Status:   &status,
		})
	}
	return roster
}
