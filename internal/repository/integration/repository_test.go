//go:build integration

package integration

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/autoparts-inventory/internal/model"
	dashrepo "github.com/you-humble/autoparts-inventory/internal/repository/dashboard"
	orderrepo "github.com/you-humble/autoparts-inventory/internal/repository/order"
	productrepo "github.com/you-humble/autoparts-inventory/internal/repository/product"
	userrepo "github.com/you-humble/autoparts-inventory/internal/repository/user"
)

var _ = Describe("Mongo repositories", func() {
	BeforeEach(func() {
		By("cleaning collections")
		_, err := usersColl.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
		_, err = productsColl.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
		_, err = ordersColl.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())
	})

	Context("users", func() {
		It("rejects a second account with the same email", func() {
			repo := userrepo.NewUserRepository(usersColl)
			email := gofakeit.Email()

			id, err := repo.Create(ctx, &model.User{Email: email, PasswordHash: "h", Role: model.RoleUser})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(BeEmpty())

			_, err = repo.Create(ctx, &model.User{Email: email, PasswordHash: "h", Role: model.RoleUser})
			Expect(err).To(MatchError(model.ErrDuplicateEmail))

			u, err := repo.UserByEmail(ctx, email)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(id))
		})

		It("updates the password hash", func() {
			repo := userrepo.NewUserRepository(usersColl)

			id, err := repo.Create(ctx, &model.User{Email: gofakeit.Email(), PasswordHash: "old", Role: model.RoleAdmin})
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.UpdatePassword(ctx, id, "new")).To(Succeed())

			u, err := repo.UserByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.PasswordHash).To(Equal("new"))
		})
	})

	Context("products", func() {
		It("finds products by text and pages newest first", func() {
			repo := productrepo.NewProductRepository(productsColl)

			target := newFakeProduct(4, 3)
			target.Title = "Xenon headlight"
			other := newFakeProduct(2, 3)
			other.Title = "Rear bumper"

			_, err := repo.Create(ctx, target)
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Create(ctx, other)
			Expect(err).NotTo(HaveOccurred())

			items, total, err := repo.Search(ctx, model.ProductQuery{
				Text: "headlight",
				Page: model.Page{Number: 1, PerPage: 20},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(items).To(HaveLen(1))
			Expect(items[0].Title).To(Equal("Xenon headlight"))

			_, total, err = repo.Search(ctx, model.ProductQuery{Page: model.Page{Number: 1, PerPage: 1}})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("clamps stock at zero on a sale and restores it on reversal", func() {
			repo := productrepo.NewProductRepository(productsColl)

			id, err := repo.Create(ctx, newFakeProduct(2, 3))
			Expect(err).NotTo(HaveOccurred())

			qty, err := repo.ApplySale(ctx, id, 5, time.Now().UTC())
			Expect(err).NotTo(HaveOccurred())
			Expect(qty).To(BeZero())

			p, err := repo.ProductByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.TotalSold).To(Equal(int64(5)))

			Expect(repo.RestoreSale(ctx, id, 5, time.Now().UTC())).To(Succeed())

			p, err = repo.ProductByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Quantity).To(Equal(int64(5)))
			Expect(p.TotalSold).To(BeZero())
		})

		It("tracks link ownership through push and pull", func() {
			repo := productrepo.NewProductRepository(productsColl)
			url := "https://www.ebay.com/itm/" + gofakeit.DigitN(12)

			p := newFakeProduct(1, 3)
			id, err := repo.Create(ctx, p)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.OwnerByLinkURL(ctx, url)
			Expect(err).To(MatchError(model.ErrNotFound))

			Expect(repo.PushLink(ctx, id, model.EbayLink{URL: url, Account: "PMC", AddedAt: time.Now().UTC()})).To(Succeed())

			owner, err := repo.OwnerByLinkURL(ctx, url)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner.ID).To(Equal(id))
			Expect(owner.Thumbnail).To(Equal(p.Thumbnail()))

			Expect(repo.PullLink(ctx, id, url, time.Now().UTC())).To(Succeed())
			_, err = repo.OwnerByLinkURL(ctx, url)
			Expect(err).To(MatchError(model.ErrNotFound))
		})

		It("reports missing and malformed ids", func() {
			repo := productrepo.NewProductRepository(productsColl)

			_, err := repo.ProductByID(ctx, bson.NewObjectID().Hex())
			Expect(err).To(MatchError(model.ErrNotFound))

			_, err = repo.ProductByID(ctx, "not-an-id")
			Expect(err).To(MatchError(model.ErrInvalidID))
		})
	})

	Context("orders", func() {
		It("lists by product and cascades on product removal", func() {
			products := productrepo.NewProductRepository(productsColl)
			orders := orderrepo.NewOrderRepository(ordersColl)

			p := newFakeProduct(10, 3)
			pid, err := products.Create(ctx, p)
			Expect(err).NotTo(HaveOccurred())

			now := time.Now()
			for i := range 3 {
				_, err := orders.Create(ctx, newFakeOrder(p, pid, 1, now.Add(time.Duration(i)*time.Minute)))
				Expect(err).NotTo(HaveOccurred())
			}
			_, err = orders.Create(ctx, newFakeOrder(p, bson.NewObjectID().Hex(), 1, now))
			Expect(err).NotTo(HaveOccurred())

			items, total, err := orders.List(ctx, model.OrdersFilter{
				ProductID: pid,
				Page:      model.Page{Number: 1, PerPage: 2},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(items).To(HaveLen(2))
			Expect(items[0].CreatedAt).To(BeTemporally(">", items[1].CreatedAt))

			removed, err := orders.DeleteByProductID(ctx, pid)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(int64(3)))

			_, total, err = orders.List(ctx, model.OrdersFilter{Page: model.Page{Number: 1, PerPage: 20}})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
		})
	})

	Context("dashboard", func() {
		It("counts stock levels and recent orders", func() {
			products := productrepo.NewProductRepository(productsColl)
			orders := orderrepo.NewOrderRepository(ordersColl)
			dash := dashrepo.NewDashboardRepository(productsColl, ordersColl)

			healthy := newFakeProduct(10, 3)
			healthy.Price = 2
			low := newFakeProduct(2, 3)
			low.Price = 5
			out := newFakeProduct(0, 3)
			out.Price = 100

			var lowID string
			for _, p := range []*model.Product{healthy, low, out} {
				id, err := products.Create(ctx, p)
				Expect(err).NotTo(HaveOccurred())
				if p == low {
					lowID = id
				}
			}

			now := time.Now().UTC()
			_, err := orders.Create(ctx, newFakeOrder(low, lowID, 1, now.Add(-time.Hour)))
			Expect(err).NotTo(HaveOccurred())
			_, err = orders.Create(ctx, newFakeOrder(low, lowID, 1, now.Add(-30*24*time.Hour)))
			Expect(err).NotTo(HaveOccurred())

			ps, err := dash.ProductStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ps.TotalProducts).To(Equal(int64(3)))
			Expect(ps.OutOfStock).To(Equal(int64(1)))
			Expect(ps.LowStock).To(Equal(int64(1)))
			Expect(ps.TotalValue).To(BeNumerically("~", 30.0, 0.001))

			os, err := dash.OrderStats(ctx, now.Add(-model.RecentWindow))
			Expect(err).NotTo(HaveOccurred())
			Expect(os.TotalOrders).To(Equal(int64(2)))
			Expect(os.RecentOrders7d).To(Equal(int64(1)))

			lowList, err := dash.LowStockProducts(ctx, model.LowStockListLimit)
			Expect(err).NotTo(HaveOccurred())
			Expect(lowList).To(HaveLen(1))
			Expect(lowList[0].ID).To(Equal(lowID))

			outList, err := dash.OutOfStockProducts(ctx, model.OutOfStockListLimit)
			Expect(err).NotTo(HaveOccurred())
			Expect(outList).To(HaveLen(1))
		})
	})
})
