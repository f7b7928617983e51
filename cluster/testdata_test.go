package cluster_test

import "github.com/vlarandev/jetcluster/pseudojet"

func partons2To1() []pseudojet.PseudoJet {
	return []pseudojet.PseudoJet{
		pseudojet.MustNew(0.2626773221934335, -0.08809521946454194, -0.1141608706693822, -0.2195584284654444),
		pseudojet.MustNew(2.21902459329915, -0.7529973704809976, -0.9658189214109036, -1.850475321845671),
	}
}

func partons3To2() []pseudojet.PseudoJet {
	return []pseudojet.PseudoJet{
		pseudojet.MustNew(48.32406329129799, -3.576937946768497, 0.1029621819467338, -48.1913893418257),
		pseudojet.MustNew(90.45021831804598, -6.668149504968421, 2.750224246879194, -90.16215415879022),
		pseudojet.MustNew(8.331785929751781, 1.154124013760492, 1.428371653463948, -8.126894176723383),
	}
}

func partons4To4() []pseudojet.PseudoJet {
	return []pseudojet.PseudoJet{
		pseudojet.MustNew(6.918281417330659, 0.0921329982846809, -1.37262399277452, -6.78012040117026),
		pseudojet.MustNew(14.08869844306916, -2.416716165822407, -3.598378480403583, 13.40531906018502),
		pseudojet.MustNew(10.58285213260104, -0.1240036336102471, -0.7792325830056485, 10.55339655944626),
		pseudojet.MustNew(1.512949203734659, 0.4907951919308299, -0.3455630061912586, 1.388784209807401),
	}
}

func partons8To7() []pseudojet.PseudoJet {
	return []pseudojet.PseudoJet{
		pseudojet.MustNew(55.0566721275858, 2.853555315376817, -0.2177619033434216, -54.98224211124915),
		pseudojet.MustNew(6.22300156243039, 1.897786377727834, 3.878240628357652, -4.481451209047378),
		pseudojet.MustNew(34.72698340289853, -1.789702417265187, -0.8624446512551973, 34.67011004808532),
		pseudojet.MustNew(0.2482353087299138, 0.1606423482788706, 0.09154657065594995, 0.1656322125698495),
		pseudojet.MustNew(4.49341017269029, 1.186315084968943, 2.123673434575869, -3.778015701726003),
		pseudojet.MustNew(12.33218634443971, 0.8398185974883793, -0.8370639741138476, -12.27504984350526),
		pseudojet.MustNew(11.04475618445089, -1.016498045091359, -0.9891379652313798, -10.95330895136394),
		pseudojet.MustNew(3.689996497465931, 2.126537512149597, 0.3956733858199553, -2.989540923366796),
	}
}

func partons9To7() []pseudojet.PseudoJet {
	return []pseudojet.PseudoJet{
		pseudojet.MustNew(69.26839536506921, 2.523788521334493, 3.311656952663986, -69.14314149775808),
		pseudojet.MustNew(2.292439531535948, 1.678009926288044, -0.01258571588949442, 1.561858922116857),
		pseudojet.MustNew(3.289626669238658, 0.7015436852248482, -1.673170474700709, -2.744081019808675),
		pseudojet.MustNew(211.8446186434034, -1.500613625861779, -1.145111454447386, -211.8362087242677),
		pseudojet.MustNew(36.19723806801562, 1.307180544524667, 0.1299048201403605, -36.17339419399588),
		pseudojet.MustNew(1321.648751509191, -0.9834513292440703, 2.690421552193925, -1321.645647222113),
		pseudojet.MustNew(614.6463548568801, -0.9800167457297735, 1.332258289303498, -614.6441297156254),
		pseudojet.MustNew(84.89137294427485, -0.6700938500184943, -0.3903008019701275, -84.88783092929236),
		pseudojet.MustNew(323.1911878589112, 3.631300879389308, -0.9682072466926734, -323.1693366306664),
	}
}
