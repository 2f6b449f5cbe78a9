package customer

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/persist"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestProfile() *Profile {
	return NewProfile(persist.NewMemory(), "user-storage:test", testLogger())
}

func TestProfile_LoginLogout(t *testing.T) {
	p := newTestProfile()

	if p.Current().IsAuthenticated {
		t.Fatal("fresh profile must be guest")
	}
	if p.UserID() != "guest" {
		t.Fatalf("guest UserID = %s", p.UserID())
	}

	p.Login(User{ID: "u1", Name: "Ayşe Yılmaz", Email: "ayse@example.com"})
	u := p.Current()
	if !u.IsAuthenticated || u.ID != "u1" {
		t.Fatalf("unexpected user after login: %+v", u)
	}
	if p.UserID() != "u1" {
		t.Fatalf("UserID = %s, want u1", p.UserID())
	}

	p.Logout()
	if p.Current().IsAuthenticated {
		t.Fatal("expected guest after logout")
	}
	if p.UserID() != "guest" {
		t.Fatalf("UserID after logout = %s", p.UserID())
	}
}

func TestProfile_FirstAddressBecomesDefault(t *testing.T) {
	p := newTestProfile()
	p.Login(User{ID: "u1"})

	a := p.AddAddress(Address{Title: "Ev", City: "İstanbul"})
	if a.ID == "" {
		t.Fatal("address must get an id")
	}
	if !p.Current().Addresses[0].IsDefault {
		t.Fatal("first address must be the default")
	}
}

func TestProfile_SingleDefaultAddress(t *testing.T) {
	p := newTestProfile()
	p.Login(User{ID: "u1"})

	p.AddAddress(Address{Title: "Ev"})
	b := p.AddAddress(Address{Title: "İş", IsDefault: true})

	var defaults int
	for _, a := range p.Current().Addresses {
		if a.IsDefault {
			defaults++
			if a.ID != b.ID {
				t.Fatalf("wrong default address: %s", a.Title)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestProfile_SetDefaultAddress(t *testing.T) {
	p := newTestProfile()
	p.Login(User{ID: "u1"})

	a := p.AddAddress(Address{Title: "Ev"})
	b := p.AddAddress(Address{Title: "İş"})

	if err := p.SetDefaultAddress(b.ID); err != nil {
		t.Fatalf("SetDefaultAddress error: %v", err)
	}
	for _, addr := range p.Current().Addresses {
		want := addr.ID == b.ID
		if addr.IsDefault != want {
			t.Fatalf("address %s default=%v, want %v", addr.Title, addr.IsDefault, want)
		}
	}
	_ = a

	if err := p.SetDefaultAddress("missing"); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestProfile_RemoveDefaultReassigns(t *testing.T) {
	p := newTestProfile()
	p.Login(User{ID: "u1"})

	a := p.AddAddress(Address{Title: "Ev"})
	p.AddAddress(Address{Title: "İş"})

	if err := p.RemoveAddress(a.ID); err != nil {
		t.Fatalf("RemoveAddress error: %v", err)
	}
	addrs := p.Current().Addresses
	if len(addrs) != 1 || !addrs[0].IsDefault {
		t.Fatalf("remaining address must inherit default: %+v", addrs)
	}

	if err := p.RemoveAddress("missing"); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestProfile_UpdateAddress(t *testing.T) {
	p := newTestProfile()
	p.Login(User{ID: "u1"})

	a := p.AddAddress(Address{Title: "Ev", City: "İstanbul"})
	a.City = "Ankara"
	if err := p.UpdateAddress(a); err != nil {
		t.Fatalf("UpdateAddress error: %v", err)
	}
	if p.Current().Addresses[0].City != "Ankara" {
		t.Fatal("update did not stick")
	}

	if err := p.UpdateAddress(Address{ID: "missing"}); err != ErrAddressNotFound {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func favProduct(id string) catalog.Product {
	return catalog.Product{ID: id, Name: "Ürün " + id, Price: decimal.NewFromInt(100)}
}

func TestFavorites(t *testing.T) {
	f := NewFavorites(persist.NewMemory(), "favorites-storage:test", testLogger())

	f.Add(favProduct("1"))
	f.Add(favProduct("2"))
	f.Add(favProduct("1")) // duplicate

	if got := len(f.List()); got != 2 {
		t.Fatalf("expected 2 favorites, got %d", got)
	}
	if !f.IsFavorite("1") || f.IsFavorite("3") {
		t.Fatal("membership check wrong")
	}

	f.Remove("1")
	if f.IsFavorite("1") {
		t.Fatal("expected 1 removed")
	}
	f.Remove("missing") // no-op

	f.Clear()
	if got := len(f.List()); got != 0 {
		t.Fatalf("expected empty favorites, got %d", got)
	}
}

func TestProfile_PersistsAcrossInstances(t *testing.T) {
	store := persist.NewMemory()
	log := testLogger()

	p1 := NewProfile(store, "user-storage:s1", log)
	p1.Login(User{ID: "u1", Name: "Ayşe"})

	p2 := NewProfile(store, "user-storage:s1", log)
	if !p2.Current().IsAuthenticated || p2.Current().ID != "u1" {
		t.Fatalf("profile not restored: %+v", p2.Current())
	}
}
