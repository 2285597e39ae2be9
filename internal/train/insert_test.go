package train

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rec(time string) Record {
	return NewRecord("moscow", "001a", time, "kazan")
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name        string
		records     []Record
		record      Record
		want        []Record
		wantChanged bool
	}{
		{
			name:        "into empty collection",
			records:     nil,
			record:      NewRecord("a", "t1", "08:00", "d1"),
			want:        []Record{NewRecord("a", "t1", "08:00", "d1")},
			wantChanged: true,
		},
		{
			name:        "between existing departures",
			records:     []Record{rec("08:00"), rec("10:00")},
			record:      rec("09:00"),
			want:        []Record{rec("08:00"), rec("09:00"), rec("10:00")},
			wantChanged: true,
		},
		{
			name:        "before every departure",
			records:     []Record{rec("08:00"), rec("10:00")},
			record:      rec("07:59"),
			want:        []Record{rec("07:59"), rec("08:00"), rec("10:00")},
			wantChanged: true,
		},
		{
			name:        "after every departure",
			records:     []Record{rec("08:00"), rec("10:00")},
			record:      rec("23:00"),
			want:        []Record{rec("08:00"), rec("10:00"), rec("23:00")},
			wantChanged: true,
		},
		{
			name: "tie goes after existing ties",
			records: []Record{
				rec("08:00"),
				NewRecord("tver", "002", "09:00", "kazan"),
				NewRecord("omsk", "003", "09:00", "kazan"),
				rec("10:00"),
			},
			record: NewRecord("perm", "004", "09:00", "kazan"),
			want: []Record{
				rec("08:00"),
				NewRecord("tver", "002", "09:00", "kazan"),
				NewRecord("omsk", "003", "09:00", "kazan"),
				NewRecord("perm", "004", "09:00", "kazan"),
				rec("10:00"),
			},
			wantChanged: true,
		},
		{
			name:        "duplicate is skipped",
			records:     []Record{rec("08:00"), rec("10:00")},
			record:      rec("10:00"),
			want:        []Record{rec("08:00"), rec("10:00")},
			wantChanged: false,
		},
		{
			name:        "times compare as strings",
			records:     []Record{rec("10:00"), rec("9:00")},
			record:      rec("11:00"),
			want:        []Record{rec("10:00"), rec("11:00"), rec("9:00")},
			wantChanged: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Insert(tt.records, tt.record)
			if changed != tt.wantChanged {
				t.Errorf("Insert() changed = %v, want %v", changed, tt.wantChanged)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Insert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsert_SameRecordTwice(t *testing.T) {
	r := NewRecord("a", "t1", "08:00", "d1")
	once, changed := Insert(nil, r)
	if !changed {
		t.Fatalf("first Insert() changed = false, want true")
	}
	twice, changed := Insert(once, r)
	if changed {
		t.Errorf("second Insert() changed = true, want false")
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Insert() altered the collection (-want +got):\n%s", diff)
	}
}

func TestInsert_KeepsSortedOrder(t *testing.T) {
	times := []string{"12:30", "05:10", "23:59", "00:00", "18:45", "09:15", "14:00"}
	var records []Record
	for _, tm := range times {
		records, _ = Insert(records, rec(tm))
	}

	if len(records) != len(times) {
		t.Fatalf("len = %d, want %d", len(records), len(times))
	}
	if !slices.IsSortedFunc(records, func(a, b Record) int {
		return cmpString(a.TimeDeparture, b.TimeDeparture)
	}) {
		t.Errorf("records not sorted by departure time: %v", records)
	}
}

func TestInsert_DoesNotModifyInput(t *testing.T) {
	records := make([]Record, 2, 8)
	records[0] = rec("08:00")
	records[1] = rec("10:00")
	before := slices.Clone(records)

	got, _ := Insert(records, rec("09:00"))

	if diff := cmp.Diff(before, records); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
	if &got[0] == &records[0] {
		t.Errorf("Insert() returned a slice sharing the input backing array")
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestRecord_Normalized(t *testing.T) {
	got := NewRecord("Москва", "001A", "08:00 PM", "Kazan").Normalized()
	want := NewRecord("москва", "001a", "08:00 pm", "kazan")
	if got != want {
		t.Errorf("Normalized() = %v, want %v", got, want)
	}
}
