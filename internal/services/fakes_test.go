package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showroom_manager/internal/models"
	"showroom_manager/internal/repository"
)

// fakeStore is a single in-memory dataset; the fake repositories are views
// over it so reads and transactional writes observe the same state.
type fakeStore struct {
	bikes          map[uint]models.Bike
	customers      map[uint]models.Customer
	sales          map[uint]models.Sale
	deliveryOrders map[uint]models.DeliveryOrder
	serviceSales   map[uint]models.ServiceSale
	users          map[uint]models.User
	nextID         uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bikes:          map[uint]models.Bike{},
		customers:      map[uint]models.Customer{},
		sales:          map[uint]models.Sale{},
		deliveryOrders: map[uint]models.DeliveryOrder{},
		serviceSales:   map[uint]models.ServiceSale{},
		users:          map[uint]models.User{},
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) clone() *fakeStore {
	copied := newFakeStore()
	copied.nextID = s.nextID
	for k, v := range s.bikes {
		copied.bikes[k] = v
	}
	for k, v := range s.customers {
		copied.customers[k] = v
	}
	for k, v := range s.sales {
		copied.sales[k] = v
	}
	for k, v := range s.deliveryOrders {
		copied.deliveryOrders[k] = v
	}
	for k, v := range s.serviceSales {
		copied.serviceSales[k] = v
	}
	for k, v := range s.users {
		copied.users[k] = v
	}
	return copied
}

func (s *fakeStore) restore(snapshot *fakeStore) {
	s.bikes = snapshot.bikes
	s.customers = snapshot.customers
	s.sales = snapshot.sales
	s.deliveryOrders = snapshot.deliveryOrders
	s.serviceSales = snapshot.serviceSales
	s.users = snapshot.users
	s.nextID = snapshot.nextID
}

func newFakeRepos(store *fakeStore) *repository.Repositories {
	return &repository.Repositories{
		DeliveryOrders: &fakeDeliveryOrderRepo{store: store},
		Bikes:          &fakeBikeRepo{store: store},
		Customers:      &fakeCustomerRepo{store: store},
		Sales:          &fakeSaleRepo{store: store},
		ServiceSales:   &fakeServiceSaleRepo{store: store},
		Users:          &fakeUserRepo{store: store},
	}
}

// fakeTxManager mimics rollback by restoring a snapshot when the callback
// fails, which is exactly the property the workflow tests need to observe.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Transaction(fn func(r *repository.Repositories) error) error {
	snapshot := m.store.clone()
	if err := fn(newFakeRepos(m.store)); err != nil {
		m.store.restore(snapshot)
		return err
	}
	return nil
}

// --- bikes ---

type fakeBikeRepo struct {
	store *fakeStore
}

func (r *fakeBikeRepo) CreateBatch(bikes []models.Bike) error {
	for i := range bikes {
		for _, existing := range r.store.bikes {
			if existing.EngineNumber == bikes[i].EngineNumber || existing.ChassisNumber == bikes[i].ChassisNumber {
				return gorm.ErrDuplicatedKey
			}
		}
		bikes[i].ID = r.store.id()
		r.store.bikes[bikes[i].ID] = bikes[i]
	}
	return nil
}

func (r *fakeBikeRepo) GetByID(id uint) (*models.Bike, error) {
	bike, ok := r.store.bikes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if order, ok := r.store.deliveryOrders[bike.DeliveryOrderID]; ok {
		bike.DeliveryOrder = &order
	}
	return &bike, nil
}

func (r *fakeBikeRepo) GetAll() ([]models.Bike, error) {
	bikes := make([]models.Bike, 0, len(r.store.bikes))
	for _, bike := range r.store.bikes {
		bikes = append(bikes, bike)
	}
	sort.Slice(bikes, func(i, j int) bool { return bikes[i].ID < bikes[j].ID })
	return bikes, nil
}

func (r *fakeBikeRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	bike, ok := r.store.bikes[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "status":
			bike.Status = value.(string)
		case "model":
			bike.Model = value.(string)
		case "color":
			bike.Color = value.(string)
		case "engine_number":
			bike.EngineNumber = value.(string)
		case "chassis_number":
			bike.ChassisNumber = value.(string)
		case "purchase_price":
			bike.PurchasePrice = value.(decimal.Decimal)
		}
	}
	r.store.bikes[id] = bike
	return nil
}

func (r *fakeBikeRepo) Delete(id uint) error {
	delete(r.store.bikes, id)
	return nil
}

func (r *fakeBikeRepo) UpdateStatusIf(id uint, from, to models.BikeStatus) (bool, error) {
	bike, ok := r.store.bikes[id]
	if !ok || bike.Status != string(from) {
		return false, nil
	}
	bike.Status = string(to)
	r.store.bikes[id] = bike
	return true, nil
}

func (r *fakeBikeRepo) Count() (int64, error) {
	return int64(len(r.store.bikes)), nil
}

func (r *fakeBikeRepo) CountByStatus(status models.BikeStatus) (int64, error) {
	var count int64
	for _, bike := range r.store.bikes {
		if bike.Status == string(status) {
			count++
		}
	}
	return count, nil
}

// --- customers ---

type fakeCustomerRepo struct {
	store *fakeStore

	// createCollides simulates losing a creation race: the first Create call
	// fails with a duplicate-key error after inserting the winner's record.
	createCollides bool
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	if r.createCollides {
		r.createCollides = false
		winner := *customer
		winner.ID = r.store.id()
		winner.Name = "Race Winner"
		r.store.customers[winner.ID] = winner
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range r.store.customers {
		if existing.CNIC == customer.CNIC {
			return gorm.ErrDuplicatedKey
		}
	}
	customer.ID = r.store.id()
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.store.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

func (r *fakeCustomerRepo) GetByCNIC(cnic string) (*models.Customer, error) {
	for _, customer := range r.store.customers {
		if customer.CNIC == cnic {
			found := customer
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	customers := make([]models.Customer, 0, len(r.store.customers))
	for _, customer := range r.store.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (r *fakeCustomerRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	customer, ok := r.store.customers[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			customer.Name = value.(string)
		case "father_name":
			customer.FatherName = value.(string)
		case "address":
			customer.Address = value.(string)
		case "mobile":
			customer.Mobile = value.(string)
		}
	}
	r.store.customers[id] = customer
	return nil
}

// --- sales ---

type fakeSaleRepo struct {
	store *fakeStore
}

func (r *fakeSaleRepo) Create(sale *models.Sale) error {
	for _, existing := range r.store.sales {
		if existing.BikeID == sale.BikeID {
			return gorm.ErrDuplicatedKey
		}
	}
	sale.ID = r.store.id()
	r.store.sales[sale.ID] = *sale
	return nil
}

func (r *fakeSaleRepo) withRelations(sale models.Sale) models.Sale {
	if bike, ok := r.store.bikes[sale.BikeID]; ok {
		if order, ok := r.store.deliveryOrders[bike.DeliveryOrderID]; ok {
			bike.DeliveryOrder = &order
		}
		sale.Bike = &bike
	}
	if customer, ok := r.store.customers[sale.CustomerID]; ok {
		sale.Customer = &customer
	}
	return sale
}

func (r *fakeSaleRepo) GetByID(id uint) (*models.Sale, error) {
	sale, ok := r.store.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sale = r.withRelations(sale)
	return &sale, nil
}

func (r *fakeSaleRepo) GetByBikeID(bikeID uint) (*models.Sale, error) {
	for _, sale := range r.store.sales {
		if sale.BikeID == bikeID {
			found := sale
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSaleRepo) GetFiltered(filter repository.SaleFilter) ([]models.Sale, error) {
	var sales []models.Sale
	for _, sale := range r.store.sales {
		sale = r.withRelations(sale)
		if filter.CNIC != "" && (sale.Customer == nil || !containsFold(sale.Customer.CNIC, filter.CNIC)) {
			continue
		}
		if filter.EngineNumber != "" && (sale.Bike == nil || !containsFold(sale.Bike.EngineNumber, filter.EngineNumber)) {
			continue
		}
		if filter.ChassisNumber != "" && (sale.Bike == nil || !containsFold(sale.Bike.ChassisNumber, filter.ChassisNumber)) {
			continue
		}
		if filter.DONumber != "" && (sale.Bike == nil || sale.Bike.DeliveryOrder == nil || !containsFold(sale.Bike.DeliveryOrder.DONumber, filter.DONumber)) {
			continue
		}
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].SaleDate.After(sales[j].SaleDate) })
	return sales, nil
}

func (r *fakeSaleRepo) GetByDateRange(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	for _, sale := range r.store.sales {
		if !sale.SaleDate.Before(start) && sale.SaleDate.Before(end) {
			sales = append(sales, r.withRelations(sale))
		}
	}
	return sales, nil
}

func (r *fakeSaleRepo) GetAll() ([]models.Sale, error) {
	var sales []models.Sale
	for _, sale := range r.store.sales {
		sales = append(sales, r.withRelations(sale))
	}
	return sales, nil
}

func (r *fakeSaleRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	sale, ok := r.store.sales[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "sale_date":
			sale.SaleDate = value.(time.Time)
		case "price":
			sale.Price = value.(decimal.Decimal)
		case "advance_amount":
			sale.AdvanceAmount = value.(decimal.Decimal)
		case "received_cash":
			sale.ReceivedCash = value.(decimal.Decimal)
		case "balance":
			sale.Balance = value.(decimal.Decimal)
		case "registration_cost":
			sale.RegistrationCost = value.(decimal.Decimal)
		case "tax_amount":
			sale.TaxAmount = value.(decimal.Decimal)
		case "payment_mode":
			sale.PaymentMode = value.(string)
		case "receipt_number":
			sale.ReceiptNumber = value.(string)
		}
	}
	r.store.sales[id] = sale
	return nil
}

func (r *fakeSaleRepo) Delete(id uint) error {
	delete(r.store.sales, id)
	return nil
}

func (r *fakeSaleRepo) Count() (int64, error) {
	return int64(len(r.store.sales)), nil
}

// --- delivery orders ---

type fakeDeliveryOrderRepo struct {
	store *fakeStore
}

func (r *fakeDeliveryOrderRepo) Create(order *models.DeliveryOrder) error {
	for _, existing := range r.store.deliveryOrders {
		if existing.DONumber == order.DONumber {
			return gorm.ErrDuplicatedKey
		}
	}
	order.ID = r.store.id()
	stored := *order
	stored.Bikes = nil
	r.store.deliveryOrders[order.ID] = stored
	return nil
}

func (r *fakeDeliveryOrderRepo) GetByID(id uint) (*models.DeliveryOrder, error) {
	order, ok := r.store.deliveryOrders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &order, nil
}

func (r *fakeDeliveryOrderRepo) GetByDONumber(doNumber string) (*models.DeliveryOrder, error) {
	for _, order := range r.store.deliveryOrders {
		if order.DONumber == doNumber {
			found := order
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDeliveryOrderRepo) GetAll() ([]models.DeliveryOrder, error) {
	orders := make([]models.DeliveryOrder, 0, len(r.store.deliveryOrders))
	for _, order := range r.store.deliveryOrders {
		for _, bike := range r.store.bikes {
			if bike.DeliveryOrderID == order.ID {
				order.Bikes = append(order.Bikes, bike)
			}
		}
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

// --- workshop ---

type fakeServiceSaleRepo struct {
	store *fakeStore
}

func (r *fakeServiceSaleRepo) Create(service *models.ServiceSale) error {
	service.ID = r.store.id()
	r.store.serviceSales[service.ID] = *service
	return nil
}

func (r *fakeServiceSaleRepo) GetRecent(limit int) ([]models.ServiceSale, error) {
	services, _ := r.GetAll()
	sort.Slice(services, func(i, j int) bool { return services[i].Date.After(services[j].Date) })
	if len(services) > limit {
		services = services[:limit]
	}
	return services, nil
}

func (r *fakeServiceSaleRepo) GetByDateRange(start, end time.Time) ([]models.ServiceSale, error) {
	var services []models.ServiceSale
	for _, service := range r.store.serviceSales {
		if !service.Date.Before(start) && service.Date.Before(end) {
			services = append(services, service)
		}
	}
	return services, nil
}

func (r *fakeServiceSaleRepo) GetAll() ([]models.ServiceSale, error) {
	services := make([]models.ServiceSale, 0, len(r.store.serviceSales))
	for _, service := range r.store.serviceSales {
		services = append(services, service)
	}
	return services, nil
}

func (r *fakeServiceSaleRepo) Count() (int64, error) {
	return int64(len(r.store.serviceSales)), nil
}

// --- users ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.store.id()
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// fixture wires fake repositories and a fake transaction manager around one
// shared store, plus seed helpers for test data.
type fixture struct {
	store *fakeStore
	repos *repository.Repositories
	txm   *fakeTxManager
}

func newFixture() *fixture {
	store := newFakeStore()
	return &fixture{
		store: store,
		repos: newFakeRepos(store),
		txm:   &fakeTxManager{store: store},
	}
}

func (f *fixture) seedDeliveryOrder(doNumber string, date time.Time) uint {
	id := f.store.id()
	f.store.deliveryOrders[id] = models.DeliveryOrder{
		ID:            id,
		DONumber:      doNumber,
		Date:          date,
		DealerName:    "Atlas Honda Ltd",
		DealerAddress: "Sheikhupura Road, Lahore",
	}
	return id
}

func (f *fixture) seedBike(orderID uint, model, engineNumber string, purchasePrice int64, status models.BikeStatus) uint {
	id := f.store.id()
	f.store.bikes[id] = models.Bike{
		ID:              id,
		Model:           model,
		Color:           "Red",
		EngineNumber:    engineNumber,
		ChassisNumber:   "CH-" + engineNumber,
		PurchasePrice:   decimal.NewFromInt(purchasePrice),
		Status:          string(status),
		DeliveryOrderID: orderID,
	}
	return id
}

func (f *fixture) seedCustomer(cnic, name string) uint {
	id := f.store.id()
	f.store.customers[id] = models.Customer{
		ID:         id,
		CNIC:       cnic,
		Name:       name,
		FatherName: "Ahmed Khan",
		Address:    "Street 4, Gujranwala",
		Mobile:     "0300-1234567",
	}
	return id
}

func (f *fixture) seedSale(bikeID, customerID uint, price, tax int64, date time.Time) uint {
	id := f.store.id()
	f.store.sales[id] = models.Sale{
		ID:          id,
		BikeID:      bikeID,
		CustomerID:  customerID,
		SaleDate:    date,
		Price:       decimal.NewFromInt(price),
		TaxAmount:   decimal.NewFromInt(tax),
		PaymentMode: string(models.PaymentCash),
	}
	return id
}

func (f *fixture) seedService(amount int64, date time.Time) uint {
	id := f.store.id()
	f.store.serviceSales[id] = models.ServiceSale{
		ID:           id,
		CustomerName: "Walk-in",
		ServiceType:  "Tuning",
		Amount:       decimal.NewFromInt(amount),
		Date:         date,
	}
	return id
}
