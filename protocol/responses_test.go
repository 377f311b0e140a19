package protocol

import (
	"errors"
	"testing"
)

func TestAssembleMSBFirst(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{name: "empty", data: nil, want: 0},
		{name: "one byte", data: []byte{0xAB}, want: 0xAB},
		{name: "two bytes", data: []byte{0x12, 0x34}, want: 0x1234},
		{name: "four bytes", data: []byte{0xA1, 0xB2, 0xC3, 0xD4}, want: 0xA1B2C3D4},
		{name: "leading zero", data: []byte{0x00, 0x00, 0x00, 0x01}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssembleMSBFirst(tt.data); got != tt.want {
				t.Errorf("AssembleMSBFirst() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestParseBurst(t *testing.T) {
	tests := []struct {
		name    string
		rx      []byte
		width   int
		want    uint32
		wantErr bool
	}{
		{name: "probe", rx: []byte{0xFF, 0x21}, width: 1, want: 0x21},
		{name: "status ignores opcode slot", rx: []byte{0xEE, 0x80, 0x01}, width: 2, want: 0x8001},
		{name: "result", rx: []byte{0x00, 0x00, 0x01, 0x80, 0x00}, width: 4, want: 0x00018000},
		{name: "short frame", rx: []byte{0x00, 0x01}, width: 4, wantErr: true},
		{name: "long frame", rx: []byte{0x00, 0x01, 0x02}, width: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBurst(tt.rx, tt.width)
			if tt.wantErr {
				var fe *FrameError
				if !errors.As(err, &fe) {
					t.Fatalf("error = %v, want *FrameError", err)
				}
				if fe.Want != tt.width+1 {
					t.Errorf("FrameError.Want = %d, want %d", fe.Want, tt.width+1)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseBurst() = 0x%X, want 0x%X", got, tt.want)
			}
		})
	}
}

func TestParseStatusResponse(t *testing.T) {
	st, err := ParseStatusResponse([]byte{0x00, 0xC0, 0x3A})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != 0xC03A {
		t.Errorf("status = %v, want 0xC03A", st)
	}
	if st.String() != "0xC03A" {
		t.Errorf("String() = %q, want %q", st.String(), "0xC03A")
	}
}

func TestParseProbeResponse(t *testing.T) {
	b, err := ParseProbeResponse([]byte{0x00, 0x7E})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != 0x7E {
		t.Errorf("probe = 0x%02X, want 0x7E", b)
	}

	if _, err := ParseProbeResponse([]byte{0x00}); err == nil {
		t.Error("expected error for truncated frame")
	}
}

func TestProtocolError(t *testing.T) {
	cause := errors.New("bus stalled")
	err := error(&ProtocolError{Operation: "read result", Opcode: OpReadResult + 2, Err: cause})

	if !IsProtocolError(err) {
		t.Error("IsProtocolError() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the cause")
	}
	want := "read result failed: read result 2 (0xB2): bus stalled"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if IsProtocolError(cause) {
		t.Error("IsProtocolError(cause) = true, want false")
	}
}

func TestOpcodeName(t *testing.T) {
	tests := []struct {
		op   byte
		want string
	}{
		{OpPowerOnReset, "power-on reset"},
		{OpInitMeasurement, "init measurement"},
		{0x86, "write config 6"},
		{0x87, "unknown opcode 0x87"},
		{0xB3, "read result 3"},
		{OpReadStatus, "read status"},
		{OpReadReg1High, "read register 1 high byte"},
	}

	for _, tt := range tests {
		if got := OpcodeName(tt.op); got != tt.want {
			t.Errorf("OpcodeName(0x%02X) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
