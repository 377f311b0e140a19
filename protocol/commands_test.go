package protocol

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
	}{
		{name: "power-on reset", opcode: OpPowerOnReset},
		{name: "init measurement", opcode: OpInitMeasurement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildCommand(tt.opcode)
			if !bytes.Equal(frame, []byte{tt.opcode}) {
				t.Errorf("frame = % X, want %02X", frame, tt.opcode)
			}
		})
	}
}

func TestBuildBurst(t *testing.T) {
	tests := []struct {
		name    string
		opcode  byte
		data    []byte
		want    []byte
		wantErr bool
		errMsg  string
	}{
		{
			name:   "one byte",
			opcode: OpReadReg1High,
			data:   []byte{0x00},
			want:   []byte{0xB5, 0x00},
		},
		{
			name:   "two bytes",
			opcode: OpReadStatus,
			data:   []byte{0x12, 0x34},
			want:   []byte{0xB4, 0x12, 0x34},
		},
		{
			name:   "four bytes keep order",
			opcode: OpWriteConfig + 3,
			data:   []byte{0xA1, 0xB2, 0xC3, 0xD4},
			want:   []byte{0x83, 0xA1, 0xB2, 0xC3, 0xD4},
		},
		{
			name:    "no data",
			opcode:  OpReadStatus,
			wantErr: true,
			errMsg:  "burst width must be 1, 2 or 4 bytes",
		},
		{
			name:    "three bytes",
			opcode:  OpReadStatus,
			data:    []byte{1, 2, 3},
			wantErr: true,
			errMsg:  "got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildBurst(tt.opcode, tt.data...)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, frame); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildWriteConfigCmd(t *testing.T) {
	data := [ConfigRegisterSize]byte{0x21, 0x42, 0x00, 0x01}

	for reg := 0; reg < NumConfigRegisters; reg++ {
		frame, err := BuildWriteConfigCmd(reg, data)
		if err != nil {
			t.Fatalf("register %d: unexpected error: %v", reg, err)
		}

		if frame[0] != byte(0x80+reg) {
			t.Errorf("register %d: opcode = 0x%02X, want 0x%02X", reg, frame[0], 0x80+reg)
		}
		if !bytes.Equal(frame[1:], data[:]) {
			t.Errorf("register %d: data = % X, want % X", reg, frame[1:], data[:])
		}
	}

	for _, reg := range []int{-1, 7, 100} {
		if _, err := BuildWriteConfigCmd(reg, data); err == nil {
			t.Errorf("register %d: expected error, got nil", reg)
		}
	}
}

func TestBuildReadResultCmd(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    []byte
		wantErr bool
	}{
		{name: "result 0", index: 0, want: []byte{0xB0, 0, 0, 0, 0}},
		{name: "result 3", index: 3, want: []byte{0xB3, 0, 0, 0, 0}},
		{name: "negative", index: -1, wantErr: true},
		{name: "past end", index: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildReadResultCmd(tt.index)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(frame, tt.want) {
				t.Errorf("frame = % X, want % X", frame, tt.want)
			}
		})
	}
}

func TestBuildReadFrames(t *testing.T) {
	if got, want := BuildReadStatusCmd(), []byte{0xB4, 0x00, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("status frame = % X, want % X", got, want)
	}
	if got, want := BuildReadProbeCmd(), []byte{0xB5, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("probe frame = % X, want % X", got, want)
	}
}

func TestValidWidth(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{n: 0, want: false},
		{n: 1, want: true},
		{n: 2, want: true},
		{n: 3, want: false},
		{n: 4, want: true},
		{n: 8, want: false},
	}

	for _, tt := range tests {
		if got := validWidth(tt.n); got != tt.want {
			t.Errorf("validWidth(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
