package cmd

import "testing"

func TestItemsFlag_Set(t *testing.T) {
	testCases := []struct {
		in       string
		wantErr  bool
		product  string
		qty      int
		discount int64
	}{
		{in: "Kopi Sachet:3", product: "Kopi Sachet", qty: 3},
		{in: "Gula 1kg:2:400", product: "Gula 1kg", qty: 2, discount: 400},
		{in: "Kopi Sachet", wantErr: true},
		{in: "a:b:c:d", wantErr: true},
		{in: "Kopi:tiga", wantErr: true},
		{in: "Gula:2:banyak", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			var items itemsFlag
			err := items.Set(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) accepted", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := items[0]
			if got.product != tc.product || got.qty != tc.qty || got.discount != tc.discount {
				t.Errorf("parsed %+v, want %s qty %d discount %d", got, tc.product, tc.qty, tc.discount)
			}
		})
	}
}

func TestItemsFlag_Repeats(t *testing.T) {
	var items itemsFlag
	for _, v := range []string{"Kopi:1", "Gula:2"} {
		if err := items.Set(v); err != nil {
			t.Fatal(err)
		}
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items.String() != "Kopi:1,Gula:2" {
		t.Errorf("String() = %q", items.String())
	}
}
