// Package protocol implements the SN74LV8153 serial-to-parallel wire format.
//
// Up to eight SN74LV8153 devices share one UART line (8N1, 2000-24000
// baud). Each device latches a received byte onto its 8 parallel output
// pins. One payload byte travels as two consecutive UART telegrams:
//
//	          ,- regular UART start bit (by UART driver) (=0)
//	          |   ,- protocol start bit (in payload) (=1)
//	          |   |   ,- 3 device address bits
//	          |   |   |              ,- 4 data bits (one nibble)
//	          |   |   |              |                   ,- UART stop bit (=1)
//	          v   v   v              v                   v
//	        .----------------------------------------------.
//	        | 0 | 1 | A0 | A1 | A2 | D0 | D1 | D2 | D3 | 1 |
//	        '----------------------------------------------'
//	            `- - - - - P A Y L O A D - - - - - - - -'
//
// The first telegram carries the low nibble, the second the high
// nibble. UART sends lsb first, so D3 of the second telegram is the
// last data bit on the wire. The device discards the first telegram if
// the second never arrives, and updates its outputs only once both are
// in.
//
// # Frame Builder
//
// Use BuildFrame to encode one output-register update:
//
//	wire, err := protocol.BuildFrame(protocol.DeviceData, 0xAB)
//	// wire is the two telegram bytes, ready for the serial port
//
// There are no response frames: the SN74LV8153 is write-only and the
// wire format needs no decoder on the host side.
package protocol
