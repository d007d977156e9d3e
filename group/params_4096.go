package group

// Standard full-strength 4096-bit group parameters: a safe-prime-style
// modulus P with a 256-bit prime-order subgroup of order Q, P - 1 = Q * R,
// and generator G of that subgroup.
const (
	p4096Hex = "95B783BA285CFD47696984B93E9DA06420AE2CE45E5D20B27207424128A52EAB414A7F2447E4E40F9A4CC7BFA214F77413C63A631B7D1FD75D1428430DC3495EB6104B44D7995AFCC888FC0BB6A388B1084233CCD6D7F900578215CA45A3EC921D636477126D5F17F4B2C64EC6100681725BE123E6D326B943AC34ABBD2E140B17AE7DE5FD33C0AB69573CDCB990FBDBA85B7C898DFFF42F3CFDBC9778FF0646613C41CB82A1682A1441AB8963EC05A5B983A6222B7FE50F1C9AFE6204CB5F2794A960518F223EEFABA898D170D0A2B995330D0B643B393EA195FE112D3E0D430F01EA2F1F62291EC109E925315FB29F307E1AB5E5F668E0A1ABE72AFA2CBB55BCAD0049C99B20E2DB90040F616C83C5EEA0384871BCA94A0A4B39B36B914748EDFB18B2A9F32CB8C5BCFFB67C3A906B19DA914F9CD8092C5E2057AF747D6BB533F29CCAB7BA5BCD8AFE79C5E9A3B0B69DDA74AC9982E0EB9776B5E93D8BFDDA58713F501C4916BB8F1449BD8BCC86F543A8AD572A699738E9B953960C710DCDB01F5DB64D26153E81690044E55C609ECF0AFD6F639C998BAA466ED6FFD03D52040DFA67865C131A3C10280F5CAF79798F4D4E046A0B976A21178A804B94C5EAF315905A09B392E357DCFE8230B3FCFF0B01C6B17B95577B49E7368BA8B8C35776550E48B19813BA5FF24EBFF282F9327BDA2A15DF374115655DC5BF0C5E6897"
	q4096Hex = "BEEB055CA1ADBCC141FB200B15CE6F013CDBEAE5B198C39B813D16A7DC1F544D"
	g4096Hex = "724B9C35CC518DD6577B285359B8EB68B2BFD8B291E2FD9589102744E8515CBEC740E185136E5EE1B4911ECC1AF9E30AB76646D64F52A863752716A9656B634BD1FF2E6A75AB17E1B49CD05A697CFC80D25B324760D40F97608EEF10362E172733C94F16463336D87663FAA06056E092311720E5BDEDA1E5B70941080F7A1CA5FC712E93603576D3E79733F2B5E672DC749BEFA0A616062472B94DA6ADA3051541C8A40260072AEB317C894D81CB8A46431D7ADC1766D6AD0D708107556A69C8AF50B56227D7F044B333A9D631C2600DAF0BD7B9E6ACC7D344569914BDADCEE954CC38B0032F74B6B24C963BBD228418168B23C3E9F589F244117327B9917708065243671D368CAF7112973C28807393D12532A42264A54B42AABC2FCC02CF17691FDEF111A4E41972F7B8998D541C5EA96E7565F56D138211B9B8FE40145F0D4A86AD65626B791AD8327D7E57618EC3D0E79018601F96E56D57033591579F0538B4DA2AF6552756760C0BAAB8DB2D691E1B34CDCBF7D12C2957E9ADEADF88F3DA924A730A09B35519372D1F9AFB4148FEE1B75E1EE62A000C69584F67F940CAFA3DC114C149FB67835453ED16327C3B360800B89289EB04AFDA655B7793EF267D47DFF463DE7A9C6CC137A382EC6CA29CC3A026B5295B960AAF31024D5618E38D8E055BAB17987740C0F49C854BDA6EFADB62C0446195172CAB84A46036DE2E"
	r4096Hex = "C8C0F5BF8A3E8F4902BFEEC4BDDA11BA6FE202B9EC3B5A2DE5C363D2B3F9B7233BF273926C8F3A83DE6E3074E2C18E774FC0BA8A9301A869A876ECD851AEB1120E54A0C28EB292753AE377C381DE00D990649F6B9A29C15A8759DA77EE9D0D6D2337D149568B894073A3069B10D8AE2B99A62964955ACED879DC3C904894626EAFC9B018BDC7AE676BCE415622F96FB156970C016FB3D3C3AD7141B000DE9228565E0FDD812AB4E794450D4A474B26472DF3AB1A88A01C83F175393870017278A26B52D14C878791856387EF2262AC0BBD28E72CFC6293FA2CF6F3939E4C97126721C4E99C349D94686E4FD909B575E3B965795544C1A968EB1F1A6F55B66021961CAE3557444089B2AD15BE165DC13AB04345FD00EDBC369476EAC4D7733B6B6FFF2580069DD6AF2592BE11D0DB757D5972CC2329861E7CB9478E8D391C40C43745CD93B9D6B0312C595B67198986CC772C88F0399EF64F40731E4896BB0F90883B5F43CC405B4343F2D5D8E5811145CD1BCD0826482C3D81C3DBD8CF2CE5FB1714F8D909A33894035CFB6F0B1E0BC104BA14F97C98A16CAB6FB26B8C6DDA202584A7B1CAC87320ABB89ECC191445FCDD3341F98D82A8EB2F803DE27CE6367B4577B29FA80F1BA659704E563084C1F1162736D492B96782E6A36466E35EADEE"
)
