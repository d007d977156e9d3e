package group

// Standard 3072-bit group parameters: a safe-prime-style modulus P with a
// 256-bit prime-order subgroup of order Q, P - 1 = Q * R, and generator G
// of that subgroup. Roughly 1.8x faster per modPow than the 4096-bit group.
const (
	p3072Hex = "9DE208BE7C62FF28027FF60BE3EF307B1520957C837055B678E3ADA5C5D83496DFBC0A41B1E813D6784747E1C0A01E2496CC7FDCC5C17FBC7C42097D3CA921AF1E6ACAE880D0311C2B990FDCEB38DDBB604341AC6BD1103CC58308B5B6A3E45A6A39206833BA84D0CAA760B3A91E70B30CAF15ED3E27652D66BA9A4CD601265369D0C36119EC264CD87ECB0C4F773702835A17BD3BF745AA4F1C64D4487418DCE730D1B6C3D1A8CB1FA964559FD2482BAE5FAEF463F08CC98DEA6797D0A4C811E9FF3B1C2A6D1A1DB5EBFB48E500D2A288F98B726BA778599CB9F50891FD9C0D50FEF42739BAF4C2A58C9E526E2C4E6A49A49A683F6F67D35E3DD63857412EC93EC097EE996069C49A68216789A561DB1786D4D4E864187A4350457A9090C0CEE7C8B01AC547A95164B5D7BE0DD60CC3063459EEE4A9CFF3700827718597955F2FB6287CE9B23BA9D4F7B1B0D9F2C28BEFFB3F0567C001852C5038573EBF625E6A83FA51069B76F1ACB3AAB917EB47BFC2DC13E105836C3650D181939C2EB0EF"
	q3072Hex = "E5C542AA50C166CFC9E8B9381BCB43194D6D547198F307EBD7BC006488C8F225"
	g3072Hex = "5E14008FB5394F919ADBA1C66ACCF3C272C64AF0551235810D2E44C92B208E65C41854A78BA71BB0198923E5992B412825743EF50852196924465E902C0BF6F4F94C2CDE8E02DD236596525C60EFBDAF99DEEAFF1C2E721C3A2C727A4B8C435AA3E84C2EC5BB4C9716AAF533D95B5739495C34BA13CDC8B43AD3B20D2AFC4233B008FA710FAE974F6B06624ABDE4F121D9C33A1C17A6FBB6085E61745F11BE4E49D0F3FEDCC9D208174CCE1B8D652DAD2F9D04DD97BE2FFF4CC022DB3FB069AD999E0947D5D8326F8A873032332F25DB519CBF1798BC5F237AA29FC087CC1EA495E73CD345B6929126C3E6C3FD4D620CB7B2ABF65B11977C82E3D115B5EA65D08026594D7A0AA6344B3B0DE40CD653DB272E15C08EC2AA8EFF3B98924014720C1F822B05900BFBD70C05CC1ED4BEE3DF2BFAC7F750174C41923275F49B4D2A67EAD36316AA70ACDA829D7726696A92839B2421EA88A8F9B9B2563CA8EE27F1D71FD3D1643891652ADDFEC16CB0E80702BECACF42218901D5E10AECB1CBD83845"
	r3072Hex = "AFE7F43203D2DC13ECE5619986A15203884772782CC76F54B8D0B554321C0A46C28635EB3ADB9F003F58790A996A9E568A78158CD6B94951EF4AB97432253A68689FBBA10452E65FF190814FEAA9B3A9308C5DF86DC99CBA0F256319B47918BBFD146A81A7686CD766B9273CC8B0942D83871869C14239B756617B621129D72841BBFD1BA2CB20A85CE6111C8E061DDEF5E2E058F4279FBA32F015C017376EA6DBC269FF0EAB342720ABE8F787425D7FD2726FE2ED22143754EB242223C5708C7FF3DB742C54669BC163A54EAFAB3F9E6A1F03D76FB5A4A252DEFCE8FB848ED4B1C5324400A5AE8C94D7C72D1398536D7CDBA4771F93118951BDBE416B2D65BA23F35FDDD1C2F2BE591F1C619B5DD85CA95D49292029DAB35399D3F6C11BC3ADE627D8828EC5E8077D8669C3CE6364D9E47E46EFF9E9B4837556D73E202B07E271F4DF674D1AF5209ECD1D0B392C866EDC556F8F667AA0DB41E042F470A94ED6"
)
