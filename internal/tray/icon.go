package tray

// iconData is a 22x22 PNG of a green pulse dot, shown in the system tray.
var iconData = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x16,
	0x08, 0x06, 0x00, 0x00, 0x00, 0xc4, 0xb4, 0x6c, 0x3b, 0x00, 0x00, 0x00,
	0x56, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0x18, 0x76, 0x40,
	0x6f, 0x89, 0xff, 0x7f, 0x6c, 0x98, 0x6a, 0x06, 0x12, 0x12, 0x27, 0xc9,
	0x50, 0x6a, 0xa9, 0x23, 0x5d, 0x31, 0xb1, 0xea, 0xb1, 0x29, 0x22, 0x26,
	0x8c, 0x09, 0x1a, 0x4e, 0xac, 0xa1, 0xb8, 0x0c, 0x27, 0xca, 0xb5, 0x84,
	0x0c, 0xc5, 0xa5, 0x9e, 0xbe, 0x06, 0x93, 0x12, 0x0c, 0x44, 0x07, 0x07,
	0x4d, 0x0d, 0x1e, 0x5a, 0x61, 0x4c, 0xb3, 0xe4, 0x46, 0xd3, 0x0c, 0x42,
	0xb3, 0x2c, 0x4d, 0xd3, 0x42, 0x88, 0xa6, 0xc5, 0x26, 0x4d, 0x0b, 0xfa,
	0x41, 0x0b, 0x00, 0x65, 0x96, 0x5c, 0x90, 0xb2, 0x4a, 0xa6, 0x93, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
