package catalog

import (
	"errors"
	"testing"

	"github.com/aska-auto/shaken/internal/models"
)

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error: %v", err)
	}
	if len(c.Makers()) != 19 {
		t.Errorf("makers = %d, want 19", len(c.Makers()))
	}
	if c.Len() == 0 {
		t.Fatal("catalog has no vehicles")
	}

	again, _ := Embedded()
	if again != c {
		t.Error("Embedded() must return the same catalog")
	}

	for _, v := range c.Vehicles() {
		if v.MakerName == "" {
			t.Errorf("%s: maker name not filled", v.ID)
		}
		if v.Weight <= 0 {
			t.Errorf("%s: weight = %d", v.ID, v.Weight)
		}
	}
}

func TestEmbedded_EveryMakerHasVehicles(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range c.Makers() {
		if len(c.VehiclesByMaker(m.ID)) == 0 {
			t.Errorf("maker %s has no vehicles", m.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}

	prius, err := c.Vehicle("prius")
	if err != nil {
		t.Fatalf("Vehicle(prius): %v", err)
	}
	if prius.Maker != "toyota" || prius.MakerName != "トヨタ" || !prius.IsHybrid {
		t.Errorf("prius = %+v", prius)
	}

	if _, err := c.Vehicle("does-not-exist"); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("err = %v, want ErrVehicleNotFound", err)
	}
	if _, err := c.VehicleOf("honda", "prius"); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("VehicleOf(honda, prius) err = %v, want ErrVehicleNotFound", err)
	}
	if _, err := c.VehicleOf("toyota", "prius"); err != nil {
		t.Errorf("VehicleOf(toyota, prius) err = %v", err)
	}

	maker, err := c.Maker("honda")
	if err != nil || maker.Name != "ホンダ" {
		t.Errorf("Maker(honda) = %+v, %v", maker, err)
	}
	if _, err := c.Maker("tesla"); !errors.Is(err, ErrMakerNotFound) {
		t.Errorf("err = %v, want ErrMakerNotFound", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}
	vs := c.VehiclesByMaker("toyota")
	vs[0].Weight = 1
	orig, _ := c.Vehicle(vs[0].ID)
	if orig.Weight == 1 {
		t.Error("mutating returned slice changed the catalog")
	}
}

func TestNew_Validation(t *testing.T) {
	makers := []models.MakerInfo{{ID: "toyota", Name: "トヨタ"}}
	valid := models.Vehicle{ID: "a", Maker: "toyota", ModelName: "A", Category: models.CategoryStandard, Weight: 1000}

	tests := []struct {
		name    string
		mod     func(v *models.Vehicle)
		wantErr error
	}{
		{"unknown maker", func(v *models.Vehicle) { v.Maker = "tesla" }, ErrMakerNotFound},
		{"bad category", func(v *models.Vehicle) { v.Category = "truck" }, models.ErrUnknownCategory},
		{"zero weight", func(v *models.Vehicle) { v.Weight = 0 }, ErrInvalidVehicle},
		{"negative displacement", func(v *models.Vehicle) { v.Displacement = -1 }, ErrInvalidVehicle},
		{"missing id", func(v *models.Vehicle) { v.ID = "" }, ErrInvalidVehicle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid
			tt.mod(&v)
			if _, err := New(makers, []models.Vehicle{v}); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := New(makers, []models.Vehicle{valid, valid}); !errors.Is(err, ErrInvalidVehicle) {
		t.Errorf("duplicate id err = %v", err)
	}
	if _, err := New(append(makers, makers[0]), nil); err == nil {
		t.Error("duplicate maker must fail")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("makers: [")); err == nil {
		t.Error("expected decode error")
	}
}
