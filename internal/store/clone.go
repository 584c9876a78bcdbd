package store

import "github.com/safar/go-catalog-store/internal/models"

// Callers only ever see copies; the rows themselves stay inside the DB.

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneProduct(p *models.Product) *models.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneOrder(o *models.Order) *models.Order {
	c := *o
	c.User = cloneUser(o.User)
	c.Items = make([]models.OrderItem, len(o.Items))
	for i, item := range o.Items {
		c.Items[i] = models.OrderItem{
			Product:  cloneProduct(item.Product),
			Quantity: item.Quantity,
		}
	}
	return &c
}
