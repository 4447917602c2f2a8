package generator

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"japantune/internal/kafka"
	"japantune/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Марки и модели японских автомобилей для тестовых данных.
var cars = map[string][]string{
	"Toyota":     {"Supra", "Chaser", "Mark II", "Celica", "AE86"},
	"Nissan":     {"Skyline", "Silvia", "350Z", "GT-R", "Laurel"},
	"Mazda":      {"RX-7", "RX-8", "MX-5"},
	"Honda":      {"Civic", "Integra", "S2000", "NSX"},
	"Subaru":     {"Impreza", "Forester", "BRZ"},
	"Mitsubishi": {"Lancer Evolution", "Eclipse", "GTO"},
}

var (
	materials  = []string{"Турбина", "Интеркулер", "Койловеры", "Выхлоп", "Диски R18", "Обвес", "Сцепление", "Тормоза"}
	countries  = []string{"Япония", "США", "Германия", "Китай", "Тайвань"}
	payMethods = []string{"Наличные", "Карта", "Перевод"}
	statuses   = []string{"new", "in_progress", "done", "cancelled"}
)

// Login возвращает логин тестового пользователя вида test_1a2b3c4d.
func Login() string {
	return "test_" + uuid.NewString()[:8]
}

// Phone возвращает номер в формате +79XXXXXXXXX.
func Phone() string {
	return fmt.Sprintf("+79%09d", gofakeit.Number(0, 999999999))
}

// UserForm - форма тестового пользователя. Роль не указана, будет подставлена первая.
func UserForm() url.Values {
	return url.Values{
		"firstName":      {gofakeit.FirstName()},
		"surName":        {gofakeit.LastName()},
		"phoneNumber":    {Phone()},
		"clientLogin":    {Login()},
		"clientPassword": {gofakeit.Password(true, true, true, false, false, 12)},
		"cardNum":        {gofakeit.CreditCardNumber(nil)},
	}
}

// CarForm - автомобиль владельца userID.
func CarForm(userID int) url.Values {
	mark := gofakeit.RandomMapKey(cars).(string)
	return url.Values{
		"mark":         {mark},
		"model":        {gofakeit.RandomString(cars[mark])},
		"releaseYear":  {strconv.Itoa(gofakeit.Number(1985, 2024))},
		"licensePlate": {fmt.Sprintf("%s%03d%s", gofakeit.LetterN(1), gofakeit.Number(1, 999), gofakeit.LetterN(2))},
		"userId":       {strconv.Itoa(userID)},
	}
}

func SupplierForm() url.Values {
	return url.Values{
		"title":   {gofakeit.Company()},
		"country": {gofakeit.RandomString(countries)},
	}
}

func MaterialForm(supplierID int) url.Values {
	return url.Values{
		"title":      {gofakeit.RandomString(materials)},
		"price":      {fmt.Sprintf("%.2f", gofakeit.Price(1000, 250000))},
		"quantity":   {strconv.Itoa(gofakeit.Number(0, 50))},
		"supplierId": {strconv.Itoa(supplierID)},
	}
}

func PaymentForm(userID int) url.Values {
	return url.Values{
		"price":     {fmt.Sprintf("%.2f", gofakeit.Price(1000, 500000))},
		"payMethod": {gofakeit.RandomString(payMethods)},
		"userId":    {strconv.Itoa(userID)},
	}
}

func ReviewForm(userID int) url.Values {
	return url.Values{
		"title":      {gofakeit.Sentence(6)},
		"rating":     {strconv.Itoa(gofakeit.Number(1, 5))},
		"reviewDate": {recentDate()},
		"userId":     {strconv.Itoa(userID)},
	}
}

// OrderMessage - сообщение импорта заказа для топика Kafka.
func OrderMessage(userID, materialID, paymentID int) kafka.OrderMessage {
	return kafka.OrderMessage{
		OrderDate:  recentDate(),
		Status:     gofakeit.RandomString(statuses),
		UserID:     userID,
		MaterialID: materialID,
		PaymentID:  paymentID,
	}
}

// OrderForm - форма заказа; те же данные, что и в сообщении импорта.
func OrderForm(userID, materialID, paymentID int) url.Values {
	return OrderMessage(userID, materialID, paymentID).Form()
}

func recentDate() string {
	return time.Now().AddDate(0, 0, -gofakeit.Number(0, 365)).Format(model.DateLayout)
}
