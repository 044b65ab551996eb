package frames

// APIC picture type byte values, per the ID3v2 standard.
const (
	PictureOther             = 0x00
	PictureFileIcon          = 0x01
	PictureOtherFileIcon     = 0x02
	PictureCoverFront        = 0x03
	PictureCoverBack         = 0x04
	PictureLeafletPage       = 0x05
	PictureMedia             = 0x06
	PictureLeadArtist        = 0x07
	PictureArtist            = 0x08
	PictureConductor         = 0x09
	PictureBand              = 0x0A
	PictureComposer          = 0x0B
	PictureLyricist          = 0x0C
	PictureRecordingLocation = 0x0D
	PictureDuringRecording   = 0x0E
	PictureDuringPerformance = 0x0F
	PictureScreenCapture     = 0x10
	PictureFish              = 0x11
	PictureIllustration      = 0x12
	PictureArtistLogo        = 0x13
	PicturePublisherLogo     = 0x14
)
